package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"campusfund/internal/domain"
)

// ImageStore persists uploaded campaign images and returns their public URL.
type ImageStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
}

// Service exposes catalog operations over a campaign repository.
type Service struct {
	campaigns  domain.CampaignRepository
	categories domain.CategoryRepository
	images     ImageStore
	logger     zerolog.Logger
	now        func() time.Time
}

// NewService wires the catalog service. images may be nil, in which case
// uploads are rejected.
func NewService(campaigns domain.CampaignRepository, categories domain.CategoryRepository, images ImageStore, logger zerolog.Logger) *Service {
	return &Service{
		campaigns:  campaigns,
		categories: categories,
		images:     images,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the campaigns matching f.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.Campaign, error) {
	all, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return Query(all, f), nil
}

// Get returns a single campaign or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	return s.campaigns.GetByID(ctx, id)
}

// Featured returns the active campaigns flagged for the landing page.
func (s *Service) Featured(ctx context.Context) ([]domain.Campaign, error) {
	all, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return Featured(all), nil
}

// Categories returns the static category list.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

// Stats computes dashboard figures over the whole catalog.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	all, err := s.campaigns.List(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("list campaigns: %w", err)
	}
	return Stats(all), nil
}

// Create stores a new campaign awaiting university approval. The actor, when
// present, becomes the creator.
func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateCampaignInput) (*domain.Campaign, error) {
	deadline, err := in.Validate()
	if err != nil {
		return nil, err
	}
	category, err := s.categories.GetCategory(ctx, strings.TrimSpace(in.CategoryID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("categoryId", "Category is required")
		}
		return nil, fmt.Errorf("load category: %w", err)
	}

	now := s.now().UTC()
	campaign := &domain.Campaign{
		ID:                 uuid.NewString(),
		Title:              strings.TrimSpace(in.Title),
		ShortDescription:   strings.TrimSpace(in.ShortDescription),
		Description:        strings.TrimSpace(in.Description),
		Goal:               in.Goal,
		Deadline:           deadline,
		CreatedAt:          now,
		UpdatedAt:          now,
		Category:           *category,
		Status:             domain.CampaignStatusPending,
		Images:             append([]string{}, in.Images...),
		Tags:               normalizeTags(in.Tags),
		Updates:            []domain.CampaignUpdate{},
		Donations:          []domain.Donation{},
		Featured:           false,
		UniversityApproved: false,
	}
	if actor != nil {
		campaign.CreatorID = actor.ID
		creator := *actor
		creator.PasswordHash = ""
		campaign.Creator = &creator
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	s.logger.Info().Str("campaign_id", campaign.ID).Str("category", category.ID).Msg("campaign created")
	return campaign, nil
}

// Updates lists the progress posts of a campaign, newest first.
func (s *Service) Updates(ctx context.Context, campaignID string) ([]domain.CampaignUpdate, error) {
	if _, err := s.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.campaigns.ListUpdates(ctx, campaignID)
}

// PostUpdate publishes a progress post. Only the creator or an admin may post.
func (s *Service) PostUpdate(ctx context.Context, actor *domain.User, campaignID string, in UpdateInput) (*domain.CampaignUpdate, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	campaign, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.CanBeManagedBy(actor) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	update := &domain.CampaignUpdate{
		ID:         uuid.NewString(),
		CampaignID: campaign.ID,
		Title:      strings.TrimSpace(in.Title),
		Content:    strings.TrimSpace(in.Content),
		Author:     actor.Name,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.campaigns.AddUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("add update: %w", err)
	}
	return update, nil
}

// AttachImage stores an uploaded image and appends its URL to the campaign.
func (s *Service) AttachImage(ctx context.Context, actor *domain.User, campaignID, filename string, data []byte) (string, error) {
	if actor == nil {
		return "", domain.ErrUnauthorized
	}
	if s.images == nil {
		return "", fmt.Errorf("image storage not configured")
	}
	campaign, err := s.Get(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if !campaign.CanBeManagedBy(actor) {
		return "", domain.ErrForbidden
	}
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
	default:
		return "", domain.NewValidationError("image", "image must be png, jpg, webp or gif")
	}
	if len(data) == 0 {
		return "", domain.NewValidationError("image", "image is empty")
	}
	key := path.Join("campaigns", campaign.ID, uuid.NewString()+ext)
	url, err := s.images.Save(ctx, key, data)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	if err := s.campaigns.AddImage(ctx, campaign.ID, url, s.now()); err != nil {
		return "", fmt.Errorf("attach image: %w", err)
	}
	return url, nil
}

// SetStatus moves a campaign to another lifecycle state.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "unknown campaign status")
	}
	return s.campaigns.SetStatus(ctx, id, status, s.now())
}

// CloseExpired completes every active campaign whose deadline has passed.
func (s *Service) CloseExpired(ctx context.Context) ([]string, error) {
	ids, err := s.campaigns.CloseExpired(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("close expired campaigns: %w", err)
	}
	if len(ids) > 0 {
		s.logger.Info().Strs("campaign_ids", ids).Msg("expired campaigns closed")
	}
	return ids, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
