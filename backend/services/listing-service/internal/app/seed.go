package app

import (
	"context"
	"fmt"
	"time"

	"github.com/harborview/realestate/backend/shared/go-repositories"
	seeding "github.com/harborview/realestate/backend/shared/go-seeding"
	"github.com/harborview/realestate/backend/shared/go-utils"
)

const seedTimeout = 30 * time.Second

// SeedDemoData loads the demo listings. It is idempotent: listings that
// already exist are left alone.
func SeedDemoData(ctx context.Context, propertyRepo repositories.PropertyRepository) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	if err := seeding.SeedDemoProperties(ctx, propertyRepo); err != nil {
		return fmt.Errorf("seed demo properties: %w", err)
	}
	utils.Logger.Info("listing-service: Seeding completed successfully.")
	return nil
}
