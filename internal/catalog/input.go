package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"campusfund/internal/domain"
)

// CreateCampaignInput is the payload accepted when proposing a campaign.
type CreateCampaignInput struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Goal             float64  `json:"goal"`
	Deadline         string   `json:"deadline"`
	CategoryID       string   `json:"categoryId"`
	Tags             []string `json:"tags"`
	Images           []string `json:"images"`
}

// Validate checks the payload and returns the parsed deadline.
func (in CreateCampaignInput) Validate() (time.Time, error) {
	var ve domain.ValidationError
	lengthBetween(&ve, "title", in.Title, 5, 100, "Title")
	lengthBetween(&ve, "shortDescription", in.ShortDescription, 10, 200, "Short description")
	lengthBetween(&ve, "description", in.Description, 50, 5000, "Description")
	switch {
	case in.Goal < 100:
		ve.Add("goal", "Goal must be at least $100")
	case in.Goal > 1000000:
		ve.Add("goal", "Goal cannot exceed $1,000,000")
	}
	var deadline time.Time
	if strings.TrimSpace(in.Deadline) == "" {
		ve.Add("deadline", "Deadline is required")
	} else {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(in.Deadline))
		if err != nil {
			ve.Add("deadline", "Deadline must be an ISO-8601 timestamp")
		}
		deadline = t.UTC()
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		ve.Add("categoryId", "Category is required")
	}
	tags := normalizeTags(in.Tags)
	switch {
	case len(tags) < 1:
		ve.Add("tags", "At least one tag is required")
	case len(tags) > 10:
		ve.Add("tags", "Cannot have more than 10 tags")
	}
	if err := ve.OrNil(); err != nil {
		return time.Time{}, err
	}
	return deadline, nil
}

// UpdateInput is the payload for a campaign progress post.
type UpdateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks the progress post payload.
func (in UpdateInput) Validate() error {
	var ve domain.ValidationError
	lengthBetween(&ve, "title", in.Title, 5, 100, "Title")
	lengthBetween(&ve, "content", in.Content, 10, 2000, "Content")
	return ve.OrNil()
}

func lengthBetween(ve *domain.ValidationError, field, value string, min, max int, label string) {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n < min:
		ve.Add(field, fmt.Sprintf("%s must be at least %d characters long", label, min))
	case n > max:
		ve.Add(field, fmt.Sprintf("%s cannot exceed %d characters", label, max))
	}
}
