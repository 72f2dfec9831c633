// Command campaignctl moderates campaigns directly in the PostgreSQL store:
// changing status, approval and featured flags, and closing campaigns whose
// deadline has passed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"campusfund/internal/adapter/repo"
	"campusfund/internal/catalog"
	"campusfund/internal/domain"
	"campusfund/internal/infra"
)

func main() {
	var (
		idFlag           string
		statusFlag       string
		approveFlag      string
		featureFlag      string
		closeExpiredFlag bool
	)

	flag.StringVar(&idFlag, "id", "", "campaign ID to update")
	flag.StringVar(&statusFlag, "status", "", "new status (draft, pending, active, completed, cancelled)")
	flag.StringVar(&approveFlag, "approve", "", "set university approval (true or false)")
	flag.StringVar(&featureFlag, "feature", "", "set the featured flag (true or false)")
	flag.BoolVar(&closeExpiredFlag, "close-expired", false, "complete every active campaign past its deadline")
	flag.Parse()

	_ = godotenv.Load()

	campaignID := strings.TrimSpace(idFlag)
	status := domain.CampaignStatus(strings.TrimSpace(strings.ToLower(statusFlag)))
	approve, err := optionalBool("approve", approveFlag)
	if err != nil {
		exitWithError(err)
	}
	feature, err := optionalBool("feature", featureFlag)
	if err != nil {
		exitWithError(err)
	}

	editing := status != "" || approve != nil || feature != nil
	if !editing && !closeExpiredFlag {
		exitWithError(errors.New("nothing to do: pass -close-expired or -id with -status, -approve or -feature"))
	}
	if editing && campaignID == "" {
		exitWithError(errors.New("-id is required with -status, -approve or -feature"))
	}
	if status != "" && !status.Valid() {
		exitWithError(fmt.Errorf("unsupported status %q", status))
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	if !cfg.UsesPostgres() {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		exitWithError(err)
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "campaignctl").Logger()
	runner := infra.NewSQLRunner(pool, logger)
	campaigns := repo.NewCampaignRepository(runner)
	svc := catalog.NewService(campaigns, campaigns, nil, logger)

	if status != "" {
		if err := svc.SetStatus(ctx, campaignID, status); err != nil {
			exitWithError(fmt.Errorf("failed to update status: %w", err))
		}
		fmt.Printf("Campaign %s status set to %s\n", campaignID, status)
	}

	var flags *repo.CampaignFlags
	if approve != nil {
		if flags, err = campaigns.SetApproval(ctx, campaignID, *approve); err != nil {
			exitWithError(fmt.Errorf("failed to update approval: %w", err))
		}
	}
	if feature != nil {
		if flags, err = campaigns.SetFeatured(ctx, campaignID, *feature); err != nil {
			exitWithError(fmt.Errorf("failed to update featured flag: %w", err))
		}
	}
	if flags != nil {
		fmt.Printf("Campaign %s (%s) status=%s approved=%t featured=%t\n",
			flags.ID, flags.Title, flags.Status, flags.UniversityApproved, flags.Featured)
	}

	if closeExpiredFlag {
		ids, err := svc.CloseExpired(ctx)
		if err != nil {
			exitWithError(err)
		}
		fmt.Printf("Closed %d expired campaign(s)\n", len(ids))
		for _, id := range ids {
			fmt.Println(id)
		}
	}
}

func optionalBool(name, raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("-%s must be true or false", name)
	}
	return &v, nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
