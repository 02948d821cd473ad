package api

import (
	"time"

	"github.com/relieflabs/aid-receipts/internal/harm"
	"github.com/relieflabs/aid-receipts/internal/models"
)

type ReceiptCreateRequest struct {
	ReceiptID    string  `json:"receipt_id" binding:"required"`
	PackageID    string  `json:"package_id" binding:"required"`
	ProofSummary string  `json:"proof_summary" binding:"required"`
	Status       string  `json:"status" binding:"required"`
	DisasterType *string `json:"disaster_type"`
}

type ReceiptResponse struct {
	ID           string    `json:"id"`
	ReceiptID    string    `json:"receipt_id"`
	PackageID    string    `json:"package_id"`
	ProofSummary string    `json:"proof_summary"`
	Status       string    `json:"status"`
	DisasterType string    `json:"disaster_type,omitempty"`
	HarmScore    int       `json:"harm_score"`
	Timestamp    time.Time `json:"timestamp"`
}

type ReceiptsListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Count    int               `json:"count"`
}

type PackageCreateRequest struct {
	PackageID   string `json:"package_id" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Urgency     string `json:"urgency" binding:"required"`
	Description string `json:"description"`
}

type PackageStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type PackageCategoryUpdateRequest struct {
	Category string `json:"category" binding:"required"`
}

type PackageResponse struct {
	ID            string    `json:"id"`
	PackageID     string    `json:"package_id"`
	Destination   string    `json:"destination"`
	Status        string    `json:"status"`
	Urgency       string    `json:"urgency"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	PriorityLabel string    `json:"priority_label,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

type PackagesListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Count    int               `json:"count"`
}

type ProductVerifyRequest struct {
	ProductType string `json:"product_type" binding:"required"`
}

type DashboardMetricsResponse struct {
	TotalPackages       int `json:"total_packages"`
	ActiveRoutes        int `json:"active_routes"`
	AlertsCount         int `json:"alerts_count"`
	CompletedDeliveries int `json:"completed_deliveries"`
}

// Harm scores are computed at response time from the stored disaster type;
// they are never read from the store.
func toReceiptResponse(r models.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           r.ID,
		ReceiptID:    r.ReceiptID,
		PackageID:    r.PackageID,
		ProofSummary: r.ProofSummary,
		Status:       string(r.Status),
		DisasterType: r.DisasterType,
		HarmScore:    harm.Score(r.DisasterType),
		Timestamp:    r.Timestamp,
	}
}

func toReceiptsListResponse(receipts []models.Receipt) ReceiptsListResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, toReceiptResponse(r))
	}
	return ReceiptsListResponse{Receipts: out, Count: len(out)}
}

func toPackageResponse(p models.Package) PackageResponse {
	return PackageResponse{
		ID:            p.ID,
		PackageID:     p.PackageID,
		Destination:   p.Destination,
		Status:        string(p.Status),
		Urgency:       string(p.Urgency),
		Description:   p.Description,
		Category:      p.Category,
		PriorityLabel: p.PriorityLabel,
		LastUpdated:   p.LastUpdated,
	}
}

func toPackagesListResponse(packages []models.Package) PackagesListResponse {
	out := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, toPackageResponse(p))
	}
	return PackagesListResponse{Packages: out, Count: len(out)}
}
