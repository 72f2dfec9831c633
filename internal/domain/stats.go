package domain

// DashboardStats aggregates platform-wide campaign figures.
type DashboardStats struct {
	TotalCampaigns   int
	TotalRaised      float64
	TotalDonors      int
	ActiveCampaigns  int
	PendingApprovals int
	SuccessRate      int
}
