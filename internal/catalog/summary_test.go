package catalog

import (
	"testing"

	"campusfund/internal/domain"
)

func TestSummarize(t *testing.T) {
	empty := Summarize(nil)
	if empty.Count != 0 || empty.TotalRaised != 0 || empty.TotalGoal != 0 || empty.AverageProgress != 0 {
		t.Fatalf("empty summary = %+v", empty)
	}

	s := Summarize(seedCampaigns())
	if s.Count != 6 {
		t.Fatalf("count = %d", s.Count)
	}
	if s.TotalRaised != 63150 || s.TotalGoal != 155000 {
		t.Fatalf("totals = %v / %v", s.TotalRaised, s.TotalGoal)
	}
	if s.AverageProgress != 41 {
		t.Fatalf("average progress = %d", s.AverageProgress)
	}

	zeroGoal := Summarize([]domain.Campaign{{Raised: 10}})
	if zeroGoal.AverageProgress != 0 {
		t.Fatalf("zero goal progress = %d", zeroGoal.AverageProgress)
	}
}

func TestStats(t *testing.T) {
	st := Stats(seedCampaigns())
	if st.TotalCampaigns != 6 || st.ActiveCampaigns != 6 || st.PendingApprovals != 0 {
		t.Fatalf("counts = %+v", st)
	}
	if st.TotalRaised != 63150 || st.TotalDonors != 182 {
		t.Fatalf("totals = %+v", st)
	}
	if st.SuccessRate != 0 {
		t.Fatalf("success rate = %d", st.SuccessRate)
	}

	cs := []domain.Campaign{
		{Status: domain.CampaignStatusCompleted, Goal: 100, Raised: 150},
		{Status: domain.CampaignStatusCompleted, Goal: 100, Raised: 50},
		{Status: domain.CampaignStatusActive, Goal: 100, Raised: 100},
		{Status: domain.CampaignStatusPending, Goal: 100, Raised: 500},
		{Status: domain.CampaignStatusDraft, Goal: 100},
	}
	st = Stats(cs)
	if st.PendingApprovals != 1 || st.ActiveCampaigns != 1 {
		t.Fatalf("counts = %+v", st)
	}
	// two of three launched campaigns reached their goal
	if st.SuccessRate != 67 {
		t.Fatalf("success rate = %d", st.SuccessRate)
	}

	if Stats(nil).SuccessRate != 0 {
		t.Fatal("empty catalog must report 0")
	}
}
