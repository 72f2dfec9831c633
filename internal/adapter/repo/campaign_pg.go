package repo

import (
	"context"
	"fmt"
	"time"

	"campusfund/internal/domain"
	"campusfund/internal/infra"
	"campusfund/internal/sqlinline"
)

// CampaignRepositoryPG implements CampaignRepository and CategoryRepository
// using PostgreSQL.
type CampaignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCampaignRepository creates a new campaign repo.
func NewCampaignRepository(sql infra.SQLExecutor) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{sql: sql}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var (
		c       domain.Campaign
		status  string
		creator struct {
			ID, Name, Email, Role             *string
			StudentID, Department, ProfileImg *string
			IsVerified                        *bool
			CreatedAt                         *time.Time
		}
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.ShortDescription, &c.Description, &c.Goal, &c.Raised,
		&c.Deadline, &c.CreatedAt, &c.UpdatedAt, &status, &c.CreatorID,
		&c.Images, &c.Tags, &c.DonorCount, &c.Featured, &c.UniversityApproved,
		&c.Category.ID, &c.Category.Name, &c.Category.Description, &c.Category.Icon, &c.Category.Color,
		&creator.ID, &creator.Name, &creator.Email, &creator.Role,
		&creator.StudentID, &creator.Department, &creator.ProfileImg, &creator.IsVerified, &creator.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	if creator.ID != nil {
		c.Creator = &domain.User{
			ID:           *creator.ID,
			Name:         deref(creator.Name),
			Email:        deref(creator.Email),
			Role:         domain.UserRole(deref(creator.Role)),
			StudentID:    deref(creator.StudentID),
			Department:   deref(creator.Department),
			ProfileImage: deref(creator.ProfileImg),
		}
		if creator.IsVerified != nil {
			c.Creator.IsVerified = *creator.IsVerified
		}
		if creator.CreatedAt != nil {
			c.Creator.CreatedAt = *creator.CreatedAt
		}
	}
	if c.Images == nil {
		c.Images = []string{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.Updates = []domain.CampaignUpdate{}
	c.Donations = []domain.Donation{}
	return &c, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// List returns every campaign in creation order.
func (r *CampaignRepositoryPG) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaigns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a campaign with its donations and updates attached.
func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.sql.QueryRow(ctx, sqlinline.QSelectCampaignByID, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	donations, err := listDonations(ctx, r.sql, id)
	if err != nil {
		return nil, fmt.Errorf("load donations: %w", err)
	}
	updates, err := r.ListUpdates(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load updates: %w", err)
	}
	c.Donations = donations
	c.Updates = updates
	return c, nil
}

// Create inserts a new campaign.
func (r *CampaignRepositoryPG) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCampaign,
		c.ID, c.Title, c.ShortDescription, c.Description, c.Goal, c.Raised,
		c.Deadline, c.CreatedAt, c.UpdatedAt,
		c.Category.ID, string(c.Status), c.CreatorID, nonNil(c.Images), nonNil(c.Tags),
		c.DonorCount, c.Featured, c.UniversityApproved,
	)
	if infra.IsUniqueViolation(err) {
		return domain.ErrDuplicateOperation
	}
	return err
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// AddImage appends an image URL to the campaign.
func (r *CampaignRepositoryPG) AddImage(ctx context.Context, id, url string, now time.Time) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QAppendCampaignImage, id, url, now.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus changes the campaign status; activating also approves it.
func (r *CampaignRepositoryPG) SetStatus(ctx context.Context, id string, status domain.CampaignStatus, now time.Time) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateCampaignStatus, id, string(status), now.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CampaignFlags is the moderation state of a campaign.
type CampaignFlags struct {
	ID                 string
	Title              string
	Status             domain.CampaignStatus
	UniversityApproved bool
	Featured           bool
}

// SetApproval sets the university approval flag.
func (r *CampaignRepositoryPG) SetApproval(ctx context.Context, id string, approved bool) (*CampaignFlags, error) {
	return r.setFlag(ctx, sqlinline.QSetCampaignApproval, id, approved)
}

// SetFeatured sets the landing page flag.
func (r *CampaignRepositoryPG) SetFeatured(ctx context.Context, id string, featured bool) (*CampaignFlags, error) {
	return r.setFlag(ctx, sqlinline.QSetCampaignFeatured, id, featured)
}

func (r *CampaignRepositoryPG) setFlag(ctx context.Context, query, id string, value bool) (*CampaignFlags, error) {
	var (
		f      CampaignFlags
		status string
	)
	err := r.sql.QueryRow(ctx, query, id, value).Scan(&f.ID, &f.Title, &status, &f.UniversityApproved, &f.Featured)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	f.Status = domain.CampaignStatus(status)
	return &f, nil
}

// CloseExpired completes active campaigns past their deadline.
func (r *CampaignRepositoryPG) CloseExpired(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QCloseExpiredCampaigns, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListUpdates returns a campaign's progress posts, newest first.
func (r *CampaignRepositoryPG) ListUpdates(ctx context.Context, campaignID string) ([]domain.CampaignUpdate, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCampaignUpdates, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []domain.CampaignUpdate{}
	for rows.Next() {
		var u domain.CampaignUpdate
		if err := rows.Scan(&u.ID, &u.CampaignID, &u.Title, &u.Content, &u.Author, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddUpdate stores a progress post.
func (r *CampaignRepositoryPG) AddUpdate(ctx context.Context, u *domain.CampaignUpdate) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCampaignUpdate, u.ID, u.CampaignID, u.Title, u.Content, u.Author, u.CreatedAt)
	if infra.IsForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

// ListCategories returns the category reference data.
func (r *CampaignRepositoryPG) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCategory looks up a category by ID.
func (r *CampaignRepositoryPG) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.sql.QueryRow(ctx, sqlinline.QSelectCategoryByID, id).Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.Color)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

var (
	_ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)
	_ domain.CategoryRepository = (*CampaignRepositoryPG)(nil)
)
