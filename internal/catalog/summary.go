package catalog

import "campusfund/internal/domain"

// Summary holds totals over a campaign listing.
type Summary struct {
	Count           int
	TotalRaised     float64
	TotalGoal       float64
	AverageProgress int
}

// Summarize totals raised and goal amounts. AverageProgress is 0 for an empty
// set or a zero total goal.
func Summarize(campaigns []domain.Campaign) Summary {
	var s Summary
	for _, c := range campaigns {
		s.TotalRaised += c.Raised
		s.TotalGoal += c.Goal
	}
	s.Count = len(campaigns)
	s.AverageProgress = domain.ProgressPercentage(s.TotalRaised, s.TotalGoal)
	return s
}

// Stats computes the dashboard figures for the whole catalog.
func Stats(campaigns []domain.Campaign) domain.DashboardStats {
	var (
		stats     domain.DashboardStats
		launched  int
		succeeded int
	)
	stats.TotalCampaigns = len(campaigns)
	for _, c := range campaigns {
		stats.TotalRaised += c.Raised
		stats.TotalDonors += c.DonorCount
		switch c.Status {
		case domain.CampaignStatusActive:
			stats.ActiveCampaigns++
		case domain.CampaignStatusPending:
			stats.PendingApprovals++
		}
		if c.Status == domain.CampaignStatusDraft || c.Status == domain.CampaignStatusPending {
			continue
		}
		launched++
		if c.Goal > 0 && c.Raised >= c.Goal {
			succeeded++
		}
	}
	stats.SuccessRate = domain.ProgressPercentage(float64(succeeded), float64(launched))
	return stats
}
