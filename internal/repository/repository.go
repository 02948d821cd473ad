package repository

import (
	"context"
	"errors"
	"time"

	"github.com/relieflabs/aid-receipts/internal/models"
)

var (
	// ErrNotFound is returned when no row matches the given ID.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a natural key (receipt_id, package_id)
	// already exists.
	ErrDuplicate = errors.New("already exists")
)

type Filter struct {
	Limit  int
	Offset int
	Status string // filter by status when non-empty
}

type ReceiptRepository interface {
	AddReceipt(ctx context.Context, r *models.Receipt) error
	ListReceipts(ctx context.Context, opts Filter) ([]models.Receipt, error)
	ReceiptExists(ctx context.Context, receiptID string) (bool, error)
}

type PackageRepository interface {
	AddPackage(ctx context.Context, p *models.Package) error
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListPackages(ctx context.Context, opts Filter) ([]models.Package, error)
	UpdatePackageStatus(ctx context.Context, id string, status models.PackageStatus, updated time.Time) (*models.Package, error)
	UpdatePackageClassification(ctx context.Context, id, category, priorityLabel string, updated time.Time) (*models.Package, error)
	PackageExists(ctx context.Context, packageID string) (bool, error)
	CountPackagesByStatus(ctx context.Context) (map[models.PackageStatus]int, error)
}
