package handlers

import (
	"time"

	"campusfund/internal/catalog"
	"campusfund/internal/domain"
)

type categoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func toCategoryDTO(c domain.Category) categoryDTO {
	return categoryDTO{ID: c.ID, Name: c.Name, Description: c.Description, Icon: c.Icon, Color: c.Color}
}

// creatorDTO is the public part of a user profile.
type creatorDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	StudentID    string    `json:"studentId,omitempty"`
	Department   string    `json:"department,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}

type userDTO struct {
	creatorDTO
	Email string `json:"email"`
}

func toCreatorDTO(u *domain.User) *creatorDTO {
	if u == nil {
		return nil
	}
	return &creatorDTO{
		ID:           u.ID,
		Name:         u.Name,
		Role:         string(u.Role),
		StudentID:    u.StudentID,
		Department:   u.Department,
		ProfileImage: u.ProfileImage,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
	}
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{creatorDTO: *toCreatorDTO(u), Email: u.Email}
}

// donationDTO never carries the donor email. Anonymous donations also hide
// the donor name and ID.
type donationDTO struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaignId"`
	DonorID       *string   `json:"donorId,omitempty"`
	DonorName     string    `json:"donorName"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message,omitempty"`
	Anonymous     bool      `json:"anonymous"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toDonationDTO(d domain.Donation) donationDTO {
	out := donationDTO{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		DonorName:     d.DisplayName(),
		Amount:        d.Amount,
		Message:       d.Message,
		Anonymous:     d.Anonymous,
		PaymentStatus: string(d.PaymentStatus),
		PaymentMethod: string(d.PaymentMethod),
		CreatedAt:     d.CreatedAt,
	}
	if !d.Anonymous {
		out.DonorID = d.DonorID
	}
	return out
}

func toDonationDTOs(ds []domain.Donation) []donationDTO {
	out := make([]donationDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, toDonationDTO(d))
	}
	return out
}

type updateDTO struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUpdateDTO(u domain.CampaignUpdate) updateDTO {
	return updateDTO{ID: u.ID, CampaignID: u.CampaignID, Title: u.Title, Content: u.Content, Author: u.Author, CreatedAt: u.CreatedAt}
}

func toUpdateDTOs(us []domain.CampaignUpdate) []updateDTO {
	out := make([]updateDTO, 0, len(us))
	for _, u := range us {
		out = append(out, toUpdateDTO(u))
	}
	return out
}

type campaignDTO struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	ShortDescription   string        `json:"shortDescription"`
	Description        string        `json:"description"`
	Goal               float64       `json:"goal"`
	Raised             float64       `json:"raised"`
	ProgressPercentage int           `json:"progressPercentage"`
	DaysLeft           int           `json:"daysLeft"`
	Deadline           time.Time     `json:"deadline"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	Category           categoryDTO   `json:"category"`
	Status             string        `json:"status"`
	CreatorID          string        `json:"creatorId"`
	Creator            *creatorDTO   `json:"creator,omitempty"`
	Images             []string      `json:"images"`
	Tags               []string      `json:"tags"`
	DonorCount         int           `json:"donorCount"`
	Updates            []updateDTO   `json:"updates"`
	Donations          []donationDTO `json:"donations"`
	Featured           bool          `json:"featured"`
	UniversityApproved bool          `json:"universityApproved"`
}

func toCampaignDTO(c domain.Campaign, now time.Time) campaignDTO {
	images := c.Images
	if images == nil {
		images = []string{}
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return campaignDTO{
		ID:                 c.ID,
		Title:              c.Title,
		ShortDescription:   c.ShortDescription,
		Description:        c.Description,
		Goal:               c.Goal,
		Raised:             c.Raised,
		ProgressPercentage: c.Progress(),
		DaysLeft:           c.DaysLeft(now),
		Deadline:           c.Deadline,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		Category:           toCategoryDTO(c.Category),
		Status:             string(c.Status),
		CreatorID:          c.CreatorID,
		Creator:            toCreatorDTO(c.Creator),
		Images:             images,
		Tags:               tags,
		DonorCount:         c.DonorCount,
		Updates:            toUpdateDTOs(c.Updates),
		Donations:          toDonationDTOs(c.Donations),
		Featured:           c.Featured,
		UniversityApproved: c.UniversityApproved,
	}
}

func toCampaignDTOs(cs []domain.Campaign, now time.Time) []campaignDTO {
	out := make([]campaignDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignDTO(c, now))
	}
	return out
}

type summaryDTO struct {
	Count           int     `json:"count"`
	TotalRaised     float64 `json:"totalRaised"`
	TotalGoal       float64 `json:"totalGoal"`
	AverageProgress int     `json:"averageProgress"`
}

func toSummaryDTO(s catalog.Summary) summaryDTO {
	return summaryDTO{Count: s.Count, TotalRaised: s.TotalRaised, TotalGoal: s.TotalGoal, AverageProgress: s.AverageProgress}
}

type statsDTO struct {
	TotalCampaigns   int     `json:"totalCampaigns"`
	TotalRaised      float64 `json:"totalRaised"`
	TotalDonors      int     `json:"totalDonors"`
	ActiveCampaigns  int     `json:"activeCampaigns"`
	PendingApprovals int     `json:"pendingApprovals"`
	SuccessRate      int     `json:"successRate"`
}

func toStatsDTO(s domain.DashboardStats) statsDTO {
	return statsDTO{
		TotalCampaigns:   s.TotalCampaigns,
		TotalRaised:      s.TotalRaised,
		TotalDonors:      s.TotalDonors,
		ActiveCampaigns:  s.ActiveCampaigns,
		PendingApprovals: s.PendingApprovals,
		SuccessRate:      s.SuccessRate,
	}
}
