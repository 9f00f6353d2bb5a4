package handler

import (
	"net/http"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

type ReportHandler struct {
	catalog   *services.CatalogService
	analytics *services.AnalyticsService
}

func NewReportHandler(catalog *services.CatalogService, analytics *services.AnalyticsService) *ReportHandler {
	return &ReportHandler{catalog: catalog, analytics: analytics}
}

type analyticsResponse struct {
	domain.AnalyticsSnapshot
	DepartureMonthName string `json:"departure_month_name"`
	BookingPeriod      string `json:"booking_period"`
}

func (h *ReportHandler) Departures(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, flightViews(h.catalog.Departures()))
}

func (h *ReportHandler) FullyBooked(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, flightViews(h.catalog.FullyBookedDepartures()))
}

func (h *ReportHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	snap := h.analytics.Snapshot()

	respondJSON(w, http.StatusOK, analyticsResponse{
		AnalyticsSnapshot:  snap,
		DepartureMonthName: snap.DepartureMonthName(),
		BookingPeriod:      snap.BookingPeriod(),
	})
}
