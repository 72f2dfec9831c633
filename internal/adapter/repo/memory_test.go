package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"campusfund/internal/domain"
)

func TestMemoryListOmitsNestedCollections(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	items, err := store.Campaigns().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 campaigns, got %d", len(items))
	}
	for _, c := range items {
		if len(c.Donations) != 0 || len(c.Updates) != 0 {
			t.Fatalf("campaign %s carries nested collections", c.ID)
		}
	}

	c, err := store.Campaigns().GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(c.Donations) != 2 {
		t.Fatalf("expected 2 donations on campaign 1, got %d", len(c.Donations))
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	ctx := context.Background()

	c, _ := store.Campaigns().GetByID(ctx, "1")
	c.Tags[0] = "mutated"
	c.Raised = 0

	again, _ := store.Campaigns().GetByID(ctx, "1")
	if again.Tags[0] != "AI" || again.Raised != 18750 {
		t.Fatalf("store was mutated through a returned value: %+v", again)
	}
}

func TestMemoryRecordUpdatesCounters(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	ctx := context.Background()
	d := &domain.Donation{
		ID: "d1", CampaignID: "2", Amount: 250, PaymentStatus: domain.PaymentStatusCompleted,
		PaymentMethod: domain.PaymentMethodCard, CreatedAt: time.Now().UTC(), IdempotencyKey: "k1",
	}
	if err := store.Donations().Record(ctx, d); err != nil {
		t.Fatalf("Record: %v", err)
	}
	c, _ := store.Campaigns().GetByID(ctx, "2")
	if c.Raised != 6450 || c.DonorCount != 33 {
		t.Fatalf("counters not updated: raised=%v donors=%d", c.Raised, c.DonorCount)
	}

	dup := *d
	dup.ID = "d2"
	if err := store.Donations().Record(ctx, &dup); !errors.Is(err, domain.ErrDuplicateOperation) {
		t.Fatalf("expected ErrDuplicateOperation, got %v", err)
	}
	got, err := store.Donations().GetByIdempotencyKey(ctx, "k1")
	if err != nil || got.ID != "d1" {
		t.Fatalf("GetByIdempotencyKey = %+v, %v", got, err)
	}

	pending := &domain.Donation{ID: "d3", CampaignID: "2", Amount: 99, PaymentStatus: domain.PaymentStatusPending}
	if err := store.Donations().Record(ctx, pending); err != nil {
		t.Fatalf("Record pending: %v", err)
	}
	c, _ = store.Campaigns().GetByID(ctx, "2")
	if c.Raised != 6450 {
		t.Fatalf("pending donation must not count: raised=%v", c.Raised)
	}

	if err := store.Donations().Record(ctx, &domain.Donation{ID: "x", CampaignID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryConcurrentRecord(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := &domain.Donation{
				ID: fmt.Sprintf("c%d", i), CampaignID: "3", Amount: 10,
				PaymentStatus: domain.PaymentStatusCompleted,
			}
			if err := store.Donations().Record(ctx, d); err != nil {
				t.Errorf("Record: %v", err)
			}
			if _, err := store.Campaigns().List(ctx); err != nil {
				t.Errorf("List: %v", err)
			}
		}()
	}
	wg.Wait()

	c, _ := store.Campaigns().GetByID(ctx, "3")
	if c.Raised != 12500+workers*10 {
		t.Fatalf("raised = %v", c.Raised)
	}
	if c.DonorCount != 28+workers {
		t.Fatalf("donor count = %d", c.DonorCount)
	}
	if len(c.Donations) != workers {
		t.Fatalf("donations = %d", len(c.Donations))
	}
}

func TestMemoryCampaignLifecycle(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	ctx := context.Background()
	repo := store.Campaigns()

	c := &domain.Campaign{ID: "new", Title: "New", Status: domain.CampaignStatusPending, Deadline: time.Now().Add(time.Hour)}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, c); !errors.Is(err, domain.ErrDuplicateOperation) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	activated := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	if err := repo.SetStatus(ctx, "new", domain.CampaignStatusActive, activated); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, _ := repo.GetByID(ctx, "new")
	if got.Status != domain.CampaignStatusActive || !got.UniversityApproved {
		t.Fatalf("activation should approve: %+v", got)
	}
	if !got.UpdatedAt.Equal(activated) {
		t.Fatalf("updatedAt = %v, want %v", got.UpdatedAt, activated)
	}
	imaged := activated.Add(time.Hour)
	if err := repo.AddImage(ctx, "new", "https://img/x.png", imaged); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	got, _ = repo.GetByID(ctx, "new")
	if len(got.Images) != 1 || !got.UpdatedAt.Equal(imaged) {
		t.Fatalf("image not stamped: %+v", got)
	}

	early := &domain.CampaignUpdate{ID: "u1", CampaignID: "new", CreatedAt: time.Now().Add(-time.Hour)}
	late := &domain.CampaignUpdate{ID: "u2", CampaignID: "new", CreatedAt: time.Now()}
	_ = repo.AddUpdate(ctx, early)
	_ = repo.AddUpdate(ctx, late)
	updates, _ := repo.ListUpdates(ctx, "new")
	if len(updates) != 2 || updates[0].ID != "u2" {
		t.Fatalf("updates should be newest first: %+v", updates)
	}
	if err := repo.AddUpdate(ctx, &domain.CampaignUpdate{CampaignID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	ids, _ := repo.CloseExpired(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "5" {
		t.Fatalf("closed = %v", ids)
	}
}

func TestMemoryUsers(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	ctx := context.Background()
	users := store.Users()

	u, err := users.GetByEmail(ctx, "SARAH.johnson@university.edu")
	if err != nil || u.ID != "1" {
		t.Fatalf("GetByEmail = %+v, %v", u, err)
	}
	err = users.Create(ctx, &domain.User{ID: "9", Email: "Sarah.Johnson@University.edu"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := users.GetByID(ctx, "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryCategories(t *testing.T) {
	store := NewMemoryStore(DefaultSeed(SeedEpoch))
	cats, _ := store.ListCategories(context.Background())
	if len(cats) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(cats))
	}
	if _, err := store.GetCategory(context.Background(), "7"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
