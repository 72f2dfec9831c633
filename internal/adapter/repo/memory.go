package repo

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"campusfund/internal/domain"
)

// MemoryStore keeps the catalog, donations and users in process memory.
// A single RWMutex guards all collections; Record applies the donation and the
// campaign counters under the same write lock.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	campaigns  []domain.Campaign
	donations  []domain.Donation
	updates    []domain.CampaignUpdate
	users      []domain.User
}

// NewMemoryStore copies seed into a fresh store.
func NewMemoryStore(seed Seed) *MemoryStore {
	m := &MemoryStore{
		categories: slices.Clone(seed.Categories),
		donations:  slices.Clone(seed.Donations),
		users:      slices.Clone(seed.Users),
	}
	for _, c := range seed.Campaigns {
		m.campaigns = append(m.campaigns, c.Clone())
	}
	return m
}

// Campaigns returns the campaign repository view of the store.
func (m *MemoryStore) Campaigns() *CampaignRepositoryMemory { return &CampaignRepositoryMemory{m: m} }

// Donations returns the donation repository view of the store.
func (m *MemoryStore) Donations() *DonationRepositoryMemory { return &DonationRepositoryMemory{m: m} }

// Users returns the user repository view of the store.
func (m *MemoryStore) Users() *UserRepositoryMemory { return &UserRepositoryMemory{m: m} }

// ListCategories returns the static categories.
func (m *MemoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.categories), nil
}

// GetCategory looks up a category by ID.
func (m *MemoryStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemoryStore) campaignIndex(id string) int {
	return slices.IndexFunc(m.campaigns, func(c domain.Campaign) bool { return c.ID == id })
}

// CampaignRepositoryMemory implements domain.CampaignRepository.
type CampaignRepositoryMemory struct {
	m *MemoryStore
}

// List returns every campaign in insertion order. Nested donations and
// updates are only populated by GetByID.
func (r *CampaignRepositoryMemory) List(ctx context.Context) ([]domain.Campaign, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.m.campaigns))
	for _, c := range r.m.campaigns {
		cp := c.Clone()
		cp.Donations = []domain.Donation{}
		cp.Updates = []domain.CampaignUpdate{}
		out = append(out, cp)
	}
	return out, nil
}

// GetByID returns the campaign with its donations and updates attached.
func (r *CampaignRepositoryMemory) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	idx := r.m.campaignIndex(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	out := r.m.campaigns[idx].Clone()
	out.Donations = r.m.donationsFor(id)
	out.Updates = r.m.updatesFor(id)
	return &out, nil
}

// Create appends a new campaign.
func (r *CampaignRepositoryMemory) Create(ctx context.Context, campaign *domain.Campaign) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.campaignIndex(campaign.ID) >= 0 {
		return domain.ErrDuplicateOperation
	}
	r.m.campaigns = append(r.m.campaigns, campaign.Clone())
	return nil
}

// AddImage appends an image URL to the campaign and stamps it with now.
func (r *CampaignRepositoryMemory) AddImage(ctx context.Context, id, url string, now time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	idx := r.m.campaignIndex(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	c := &r.m.campaigns[idx]
	c.Images = append(c.Images, url)
	c.UpdatedAt = now.UTC()
	return nil
}

// SetStatus changes the campaign status and stamps it with now.
func (r *CampaignRepositoryMemory) SetStatus(ctx context.Context, id string, status domain.CampaignStatus, now time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	idx := r.m.campaignIndex(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	c := &r.m.campaigns[idx]
	c.Status = status
	if status == domain.CampaignStatusActive {
		c.UniversityApproved = true
	}
	c.UpdatedAt = now.UTC()
	return nil
}

// CloseExpired completes active campaigns whose deadline is before now.
func (r *CampaignRepositoryMemory) CloseExpired(ctx context.Context, now time.Time) ([]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var ids []string
	for i := range r.m.campaigns {
		c := &r.m.campaigns[i]
		if c.Status == domain.CampaignStatusActive && c.Deadline.Before(now) {
			c.Status = domain.CampaignStatusCompleted
			c.UpdatedAt = now
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

// ListUpdates returns a campaign's progress posts, newest first.
func (r *CampaignRepositoryMemory) ListUpdates(ctx context.Context, campaignID string) ([]domain.CampaignUpdate, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return r.m.updatesFor(campaignID), nil
}

// AddUpdate stores a progress post.
func (r *CampaignRepositoryMemory) AddUpdate(ctx context.Context, update *domain.CampaignUpdate) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.campaignIndex(update.CampaignID) < 0 {
		return domain.ErrNotFound
	}
	r.m.updates = append(r.m.updates, *update)
	return nil
}

func (m *MemoryStore) updatesFor(campaignID string) []domain.CampaignUpdate {
	out := []domain.CampaignUpdate{}
	for _, u := range m.updates {
		if u.CampaignID == campaignID {
			out = append(out, u)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.CampaignUpdate) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (m *MemoryStore) donationsFor(campaignID string) []domain.Donation {
	out := []domain.Donation{}
	for _, d := range m.donations {
		if d.CampaignID == campaignID {
			out = append(out, d)
		}
	}
	return out
}

// DonationRepositoryMemory implements domain.DonationRepository.
type DonationRepositoryMemory struct {
	m *MemoryStore
}

// Record appends the donation and increments the campaign counters in one
// critical section.
func (r *DonationRepositoryMemory) Record(ctx context.Context, donation *domain.Donation) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	idx := r.m.campaignIndex(donation.CampaignID)
	if idx < 0 {
		return domain.ErrNotFound
	}
	if donation.IdempotencyKey != "" {
		for _, d := range r.m.donations {
			if d.IdempotencyKey == donation.IdempotencyKey {
				return domain.ErrDuplicateOperation
			}
		}
	}
	r.m.donations = append(r.m.donations, *donation)
	if donation.PaymentStatus == domain.PaymentStatusCompleted {
		c := &r.m.campaigns[idx]
		c.Raised += donation.Amount
		c.DonorCount++
		c.UpdatedAt = donation.CreatedAt
	}
	return nil
}

// ListByCampaign returns donations for a campaign in insertion order.
func (r *DonationRepositoryMemory) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return r.m.donationsFor(campaignID), nil
}

// GetByIdempotencyKey finds the donation recorded under key.
func (r *DonationRepositoryMemory) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Donation, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if key == "" {
		return nil, domain.ErrNotFound
	}
	for _, d := range r.m.donations {
		if d.IdempotencyKey == key {
			out := d
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// UserRepositoryMemory implements domain.UserRepository.
type UserRepositoryMemory struct {
	m *MemoryStore
}

// Create appends a user; emails are unique case-insensitively.
func (r *UserRepositoryMemory) Create(ctx context.Context, user *domain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	r.m.users = append(r.m.users, *user)
	return nil
}

// GetByID looks up a user by ID.
func (r *UserRepositoryMemory) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByEmail looks up a user by email, ignoring case.
func (r *UserRepositoryMemory) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

var (
	_ domain.CampaignRepository = (*CampaignRepositoryMemory)(nil)
	_ domain.CategoryRepository = (*MemoryStore)(nil)
	_ domain.DonationRepository = (*DonationRepositoryMemory)(nil)
	_ domain.UserRepository     = (*UserRepositoryMemory)(nil)
)
