package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

// Watcher streams live flight events over a long-lived connection.
type Watcher interface {
	ServeWS(w http.ResponseWriter, r *http.Request, flightID uuid.UUID)
}

type FlightHandler struct {
	catalog *services.CatalogService
	seats   *services.SeatMapService
	watcher Watcher
}

// NewFlightHandler builds the flight endpoints. watcher may be nil, in which
// case the live feed answers 501.
func NewFlightHandler(catalog *services.CatalogService, seats *services.SeatMapService, watcher Watcher) *FlightHandler {
	return &FlightHandler{catalog: catalog, seats: seats, watcher: watcher}
}

func flightViews(flights []*domain.Flight) []domain.FlightView {
	views := make([]domain.FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, f.View())
	}
	return views
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var spec domain.FlightSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	flight, err := h.catalog.Add(spec)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, flight.View())
}

// ListFlights handles GET /api/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, flightViews(h.catalog.List()))
}

// SearchFlights handles GET /api/flights/search?from=&to=&after=&before=
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	flights := h.catalog.Search(services.ScheduleQuery{
		Origin:      q.Get("from"),
		Destination: q.Get("to"),
		After:       q.Get("after"),
		Before:      q.Get("before"),
	})

	respondJSON(w, http.StatusOK, flightViews(flights))
}

func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.catalog.Find(mux.Vars(r)["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, flight.View())
}

func (h *FlightHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.seats.Seats(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, seats)
}

func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(mux.Vars(r)["name"]); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DepartFlight handles POST /api/flights/{name}/depart
func (h *FlightHandler) DepartFlight(w http.ResponseWriter, r *http.Request) {
	flight, err := h.catalog.DepartFlight(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, flight.View())
}

// Watch handles GET /api/flights/{name}/ws
func (h *FlightHandler) Watch(w http.ResponseWriter, r *http.Request) {
	if h.watcher == nil {
		respondError(w, http.StatusNotImplemented, "live updates are disabled")
		return
	}

	flight, err := h.catalog.Find(mux.Vars(r)["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.watcher.ServeWS(w, r, flight.ID)
}
