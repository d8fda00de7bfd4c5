package adaptor

import (
	"net/http"

	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

// FacilityUsage handles GET /api/admin/analytics/facility-usage (manager)
func (h *AnalyticsHandler) FacilityUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.service.FacilityUsage(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "facility usage")
		return
	}

	utils.ResponseSuccess(w, "success", usage)
}

// ClassSales handles GET /api/admin/analytics/class-sales (manager)
func (h *AnalyticsHandler) ClassSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.ClassSales(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "class sales")
		return
	}

	utils.ResponseSuccess(w, "success", sales)
}

// MembershipCounts handles GET /api/admin/analytics/memberships (manager)
func (h *AnalyticsHandler) MembershipCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.MembershipCounts(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "membership counts")
		return
	}

	utils.ResponseSuccess(w, "success", counts)
}

// SalesSummary handles GET /api/admin/analytics/sales-summary (manager)
func (h *AnalyticsHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.SalesSummary(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "sales summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}
