package domain

import (
	"context"
	"time"
)

// CampaignRepository defines access methods for campaigns.
type CampaignRepository interface {
	List(ctx context.Context) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Create(ctx context.Context, campaign *Campaign) error
	AddImage(ctx context.Context, id, url string, now time.Time) error
	SetStatus(ctx context.Context, id string, status CampaignStatus, now time.Time) error
	CloseExpired(ctx context.Context, now time.Time) ([]string, error)
	ListUpdates(ctx context.Context, campaignID string) ([]CampaignUpdate, error)
	AddUpdate(ctx context.Context, update *CampaignUpdate) error
}

// CategoryRepository exposes the static category reference data.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Record appends the donation and bumps the owning campaign's raised
	// amount and donor count as one atomic update.
	Record(ctx context.Context, donation *Donation) error
	ListByCampaign(ctx context.Context, campaignID string) ([]Donation, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Donation, error)
}

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
