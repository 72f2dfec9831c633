package repo

import (
	"context"

	"campusfund/internal/domain"
	"campusfund/internal/infra"
	"campusfund/internal/sqlinline"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Record inserts the donation and increments the campaign counters in one
// statement.
func (r *DonationRepositoryPG) Record(ctx context.Context, d *domain.Donation) error {
	donorID := ""
	if d.DonorID != nil {
		donorID = *d.DonorID
	}
	var inserted, updated int64
	err := r.sql.QueryRow(ctx, sqlinline.QRecordDonation,
		d.ID, d.CampaignID, donorID, d.DonorName, d.DonorEmail, d.Amount, d.Message, d.Anonymous,
		string(d.PaymentStatus), string(d.PaymentMethod), d.IdempotencyKey, d.CreatedAt,
	).Scan(&inserted, &updated)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	if inserted == 0 {
		return domain.ErrDuplicateOperation
	}
	return nil
}

// ListByCampaign returns donations for a campaign in insertion order.
func (r *DonationRepositoryPG) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	return listDonations(ctx, r.sql, campaignID)
}

// GetByIdempotencyKey finds the donation recorded under key.
func (r *DonationRepositoryPG) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Donation, error) {
	if key == "" {
		return nil, domain.ErrNotFound
	}
	d, err := scanDonation(r.sql.QueryRow(ctx, sqlinline.QSelectDonationByIdempotencyKey, key))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func listDonations(ctx context.Context, sql infra.SQLExecutor, campaignID string) ([]domain.Donation, error) {
	rows, err := sql.Query(ctx, sqlinline.QListDonationsByCampaign, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonation(row rowScanner) (*domain.Donation, error) {
	var (
		d                     domain.Donation
		donorID, status, meth string
	)
	if err := row.Scan(&d.ID, &d.CampaignID, &donorID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.Message, &d.Anonymous,
		&status, &meth, &d.IdempotencyKey, &d.CreatedAt); err != nil {
		return nil, err
	}
	if donorID != "" {
		d.DonorID = &donorID
	}
	d.PaymentStatus = domain.PaymentStatus(status)
	d.PaymentMethod = domain.PaymentMethod(meth)
	return &d, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
