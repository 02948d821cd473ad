package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/relieflabs/aid-receipts/internal/category"
	"github.com/relieflabs/aid-receipts/internal/events"
	"github.com/relieflabs/aid-receipts/internal/models"
	"github.com/relieflabs/aid-receipts/internal/observability"
	"github.com/relieflabs/aid-receipts/internal/priority"
	"github.com/relieflabs/aid-receipts/internal/repository"
	"github.com/relieflabs/aid-receipts/internal/seed"
	"github.com/relieflabs/aid-receipts/internal/verify"
)

// EventPublisher receives receipt-created events. May be nil when eventing
// is disabled.
type EventPublisher interface {
	Publish(ev events.ReceiptEvent)
}

type Handler struct {
	receipts  repository.ReceiptRepository
	packages  repository.PackageRepository
	seeder    *seed.Seeder
	publisher EventPublisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

func NewHandler(receipts repository.ReceiptRepository, packages repository.PackageRepository, seeder *seed.Seeder, publisher EventPublisher, metrics *observability.Metrics, clock clockwork.Clock) *Handler {
	return &Handler{
		receipts:  receipts,
		packages:  packages,
		seeder:    seeder,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.health)
	r.GET("/health", h.health)

	api := r.Group("/api")
	api.GET("/receipts", h.listReceipts)
	api.POST("/receipts", h.createReceipt)
	api.GET("/packages", h.listPackages)
	api.POST("/packages", h.createPackage)
	api.PATCH("/packages/:id", h.updatePackageStatus)
	api.PATCH("/packages/:id/process", h.processPackage)
	api.PATCH("/packages/:id/category", h.updatePackageCategory)
	api.POST("/verify/product", h.verifyProduct)
	api.GET("/dashboard/metrics", h.dashboardMetrics)
	api.POST("/seed/receipts", h.seedReceipts)
	api.POST("/seed/packages", h.seedPackages)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listReceipts(c *gin.Context) {
	filter := parseFilter(c)

	receipts, err := h.receipts.ListReceipts(c.Request.Context(), filter)
	if err != nil {
		slog.Error("failed to list receipts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve receipts"})
		return
	}

	c.JSON(http.StatusOK, toReceiptsListResponse(receipts))
}

func (h *Handler) createReceipt(c *gin.Context) {
	var req ReceiptCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status := models.ReceiptStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receipt status"})
		return
	}

	disasterType := ""
	if req.DisasterType != nil {
		disasterType = *req.DisasterType
	}

	receipt := models.Receipt{
		ID:           uuid.NewString(),
		ReceiptID:    req.ReceiptID,
		PackageID:    req.PackageID,
		ProofSummary: req.ProofSummary,
		Status:       status,
		DisasterType: disasterType,
		Timestamp:    h.clock.Now().UTC(),
	}

	if err := h.receipts.AddReceipt(c.Request.Context(), &receipt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "receipt ID already exists"})
			return
		}
		slog.Error("failed to create receipt", "receipt_id", req.ReceiptID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create receipt"})
		return
	}

	resp := toReceiptResponse(receipt)

	h.metrics.ReceiptsCreated.Inc()
	h.metrics.HarmScore.Observe(float64(resp.HarmScore))

	if h.publisher != nil {
		h.publisher.Publish(events.ReceiptEvent{
			ID:           receipt.ID,
			ReceiptID:    receipt.ReceiptID,
			PackageID:    receipt.PackageID,
			Status:       string(receipt.Status),
			DisasterType: receipt.DisasterType,
			HarmScore:    resp.HarmScore,
			Timestamp:    receipt.Timestamp,
		})
	}

	slog.Info("created receipt",
		"receipt_id", receipt.ReceiptID,
		"disaster_type", receipt.DisasterType,
		"harm_score", resp.HarmScore,
	)

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) listPackages(c *gin.Context) {
	filter := parseFilter(c)

	packages, err := h.packages.ListPackages(c.Request.Context(), filter)
	if err != nil {
		slog.Error("failed to list packages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve packages"})
		return
	}

	c.JSON(http.StatusOK, toPackagesListResponse(packages))
}

func (h *Handler) createPackage(c *gin.Context) {
	var req PackageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status := models.PackageStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package status"})
		return
	}
	urgency := models.Urgency(req.Urgency)
	if !urgency.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid urgency"})
		return
	}

	// Category and priority stay unset until the package is processed.
	pkg := models.Package{
		ID:          uuid.NewString(),
		PackageID:   req.PackageID,
		Destination: req.Destination,
		Status:      status,
		Urgency:     urgency,
		Description: req.Description,
		LastUpdated: h.clock.Now().UTC(),
	}

	if err := h.packages.AddPackage(c.Request.Context(), &pkg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "package ID already exists"})
			return
		}
		slog.Error("failed to create package", "package_id", req.PackageID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create package"})
		return
	}

	h.metrics.PackagesCreated.Inc()
	slog.Info("created package", "package_id", pkg.PackageID, "urgency", pkg.Urgency)

	c.JSON(http.StatusCreated, toPackageResponse(pkg))
}

func (h *Handler) updatePackageStatus(c *gin.Context) {
	var req PackageStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status := models.PackageStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid package status"})
		return
	}

	pkg, err := h.packages.UpdatePackageStatus(c.Request.Context(), c.Param("id"), status, h.clock.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		slog.Error("failed to update package", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update package"})
		return
	}

	c.JSON(http.StatusOK, toPackageResponse(*pkg))
}

// processPackage runs category detection on the stored description and
// computes the priority label when a category is found. A miss clears any
// previous classification.
func (h *Handler) processPackage(c *gin.Context) {
	ctx := c.Request.Context()

	pkg, err := h.packages.GetPackage(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		slog.Error("failed to fetch package", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process package"})
		return
	}

	detected := category.Detect(pkg.Description)
	label := ""
	outcome := "uncategorized"
	if detected != "" {
		label = priority.Compute(pkg.Urgency, detected)
		outcome = "categorized"
	}

	updated, err := h.packages.UpdatePackageClassification(ctx, pkg.ID, detected, label, h.clock.Now().UTC())
	if err != nil {
		slog.Error("failed to update package classification", "id", pkg.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process package"})
		return
	}

	h.metrics.PackagesProcessed.WithLabelValues(outcome).Inc()
	slog.Info("processed package", "package_id", updated.PackageID, "category", detected, "priority", label)

	c.JSON(http.StatusOK, toPackageResponse(*updated))
}

func (h *Handler) updatePackageCategory(c *gin.Context) {
	var req PackageCategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !category.Valid(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	ctx := c.Request.Context()

	pkg, err := h.packages.GetPackage(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}
		slog.Error("failed to fetch package", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update package category"})
		return
	}

	label := priority.Compute(pkg.Urgency, req.Category)

	updated, err := h.packages.UpdatePackageClassification(ctx, pkg.ID, req.Category, label, h.clock.Now().UTC())
	if err != nil {
		slog.Error("failed to update package classification", "id", pkg.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update package category"})
		return
	}

	c.JSON(http.StatusOK, toPackageResponse(*updated))
}

func (h *Handler) verifyProduct(c *gin.Context) {
	var req ProductVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The claim is checked but never logged or stored.
	c.JSON(http.StatusOK, gin.H{"verified": verify.ProductClaim(req.ProductType)})
}

func (h *Handler) dashboardMetrics(c *gin.Context) {
	counts, err := h.packages.CountPackagesByStatus(c.Request.Context())
	if err != nil {
		slog.Error("failed to retrieve dashboard metrics", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve metrics"})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	c.JSON(http.StatusOK, DashboardMetricsResponse{
		TotalPackages:       total,
		ActiveRoutes:        counts[models.PackageStatusInTransit],
		AlertsCount:         counts[models.PackageStatusDelayed],
		CompletedDeliveries: counts[models.PackageStatusDelivered],
	})
}

func (h *Handler) seedReceipts(c *gin.Context) {
	created, err := h.seeder.SeedReceipts(c.Request.Context())
	if err != nil {
		slog.Error("failed to seed receipts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed receipts"})
		return
	}
	if len(created) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "all demo receipts already exist"})
		return
	}

	h.metrics.SeedRows.WithLabelValues("receipts").Add(float64(len(created)))
	c.JSON(http.StatusCreated, toReceiptsListResponse(created))
}

func (h *Handler) seedPackages(c *gin.Context) {
	created, err := h.seeder.SeedPackages(c.Request.Context())
	if err != nil {
		slog.Error("failed to seed packages", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seed packages"})
		return
	}
	if len(created) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "all demo packages already exist"})
		return
	}

	h.metrics.SeedRows.WithLabelValues("packages").Add(float64(len(created)))
	c.JSON(http.StatusCreated, toPackagesListResponse(created))
}

func parseFilter(c *gin.Context) repository.Filter {
	filter := repository.Filter{}

	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}
	if o := c.Query("offset"); o != "" {
		if off, err := strconv.Atoi(o); err == nil && off > 0 {
			filter.Offset = off
		}
	}
	if s := c.Query("status"); s != "" {
		filter.Status = s
	}

	return filter
}
