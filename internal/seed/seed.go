// Package seed populates the store with demo receipts and packages for
// trying the API. Seeding is idempotent: rows whose natural key already
// exists are skipped.
package seed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/relieflabs/aid-receipts/internal/category"
	"github.com/relieflabs/aid-receipts/internal/models"
	"github.com/relieflabs/aid-receipts/internal/priority"
	"github.com/relieflabs/aid-receipts/internal/repository"
)

type Seeder struct {
	receipts repository.ReceiptRepository
	packages repository.PackageRepository
	clock    clockwork.Clock
}

func NewSeeder(receipts repository.ReceiptRepository, packages repository.PackageRepository, clock clockwork.Clock) *Seeder {
	return &Seeder{
		receipts: receipts,
		packages: packages,
		clock:    clock,
	}
}

// SeedPackages inserts the demo packages, running category detection and
// priority computation on each, and returns the rows actually created.
func (s *Seeder) SeedPackages(ctx context.Context) ([]models.Package, error) {
	created := []models.Package{}

	for _, demo := range demoPackages() {
		exists, err := s.packages.PackageExists(ctx, demo.PackageID)
		if err != nil {
			return nil, err
		}
		if exists {
			slog.Info("demo package already exists, skipping", "package_id", demo.PackageID)
			continue
		}

		p := demo
		p.ID = uuid.NewString()
		p.Category = category.Detect(p.Description)
		if p.Category != "" {
			p.PriorityLabel = priority.Compute(p.Urgency, p.Category)
		}
		p.LastUpdated = s.clock.Now().UTC()

		if err := s.packages.AddPackage(ctx, &p); err != nil {
			return nil, err
		}
		created = append(created, p)
		slog.Info("created demo package", "package_id", p.PackageID, "category", p.Category, "priority", p.PriorityLabel)
	}

	return created, nil
}

// SeedReceipts inserts the demo receipts and returns the rows actually
// created.
func (s *Seeder) SeedReceipts(ctx context.Context) ([]models.Receipt, error) {
	created := []models.Receipt{}

	for _, demo := range demoReceipts() {
		exists, err := s.receipts.ReceiptExists(ctx, demo.ReceiptID)
		if err != nil {
			return nil, err
		}
		if exists {
			slog.Info("demo receipt already exists, skipping", "receipt_id", demo.ReceiptID)
			continue
		}

		r := demo
		r.ID = uuid.NewString()
		r.Timestamp = s.clock.Now().UTC()

		if err := s.receipts.AddReceipt(ctx, &r); err != nil {
			return nil, err
		}
		created = append(created, r)
		slog.Info("created demo receipt", "receipt_id", r.ReceiptID, "disaster_type", r.DisasterType)
	}

	return created, nil
}
