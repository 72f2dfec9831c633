package repo

import (
	"context"
	"fmt"

	"campusfund/internal/domain"
	"campusfund/internal/infra"
	"campusfund/internal/sqlinline"
)

// Migrate creates the schema and, when the catalog is empty, loads seed.
func Migrate(ctx context.Context, sql infra.SQLExecutor, seed Seed) error {
	if _, err := sql.Exec(ctx, sqlinline.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	var count int64
	if err := sql.QueryRow(ctx, sqlinline.QCountCategories).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, c := range seed.Categories {
		if _, err := sql.Exec(ctx, sqlinline.QInsertCategory, c.ID, c.Name, c.Description, c.Icon, c.Color); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}
	users := NewUserRepository(sql)
	for i := range seed.Users {
		if err := users.Create(ctx, &seed.Users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", seed.Users[i].ID, err)
		}
	}
	campaigns := NewCampaignRepository(sql)
	for i := range seed.Campaigns {
		if err := campaigns.Create(ctx, &seed.Campaigns[i]); err != nil {
			return fmt.Errorf("seed campaign %s: %w", seed.Campaigns[i].ID, err)
		}
	}
	for _, d := range seed.Donations {
		if err := seedDonation(ctx, sql, d); err != nil {
			return fmt.Errorf("seed donation %s: %w", d.ID, err)
		}
	}
	return nil
}

func seedDonation(ctx context.Context, sql infra.SQLExecutor, d domain.Donation) error {
	donorID := ""
	if d.DonorID != nil {
		donorID = *d.DonorID
	}
	_, err := sql.Exec(ctx, sqlinline.QInsertSeedDonation,
		d.ID, d.CampaignID, donorID, d.DonorName, d.DonorEmail, d.Amount, d.Message, d.Anonymous,
		string(d.PaymentStatus), string(d.PaymentMethod), d.CreatedAt)
	return err
}
