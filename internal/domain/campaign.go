package domain

import (
	"math"
	"time"
)

// CampaignStatus enumerates the campaign lifecycle states.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// Category is static reference data grouping campaigns.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
}

// CampaignUpdate is a progress post written by the campaign creator.
type CampaignUpdate struct {
	ID         string
	CampaignID string
	Title      string
	Content    string
	Author     string
	CreatedAt  time.Time
}

// Campaign is a fundraising project with a monetary goal and a deadline.
type Campaign struct {
	ID                 string
	Title              string
	ShortDescription   string
	Description        string
	Goal               float64
	Raised             float64
	Deadline           time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Category           Category
	Status             CampaignStatus
	CreatorID          string
	Creator            *User
	Images             []string
	Tags               []string
	DonorCount         int
	Updates            []CampaignUpdate
	Donations          []Donation
	Featured           bool
	UniversityApproved bool
}

// Progress returns the rounded percentage of the goal raised so far.
func (c Campaign) Progress() int {
	return ProgressPercentage(c.Raised, c.Goal)
}

// DaysLeft returns the whole days remaining until the deadline, never negative.
func (c Campaign) DaysLeft(now time.Time) int {
	remaining := c.Deadline.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// CanBeManagedBy reports whether the user may edit the campaign.
func (c Campaign) CanBeManagedBy(u *User) bool {
	if u == nil {
		return false
	}
	return u.Role == UserRoleAdmin || (c.CreatorID != "" && c.CreatorID == u.ID)
}

// Clone returns a deep copy so callers can't mutate shared slices.
func (c Campaign) Clone() Campaign {
	out := c
	out.Images = append([]string(nil), c.Images...)
	out.Tags = append([]string(nil), c.Tags...)
	out.Updates = append([]CampaignUpdate(nil), c.Updates...)
	out.Donations = append([]Donation(nil), c.Donations...)
	if c.Creator != nil {
		creator := *c.Creator
		out.Creator = &creator
	}
	return out
}

// ProgressPercentage computes round(100*raised/goal); a zero goal yields 0.
func ProgressPercentage(raised, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(100 * raised / goal))
}
