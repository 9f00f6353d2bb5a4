package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

type BookingHandler struct {
	svc     *services.BookingService
	catalog *services.CatalogService
}

func NewBookingHandler(svc *services.BookingService, catalog *services.CatalogService) *BookingHandler {
	return &BookingHandler{svc: svc, catalog: catalog}
}

type bookSeatBody struct {
	TravellerID string `json:"traveller_id"`
}

// BookSeat handles POST /api/flights/{name}/seats/{index}/book. A seat lost
// to another traveller is a 200 with outcome ALREADY_BOOKED, not an error.
func (h *BookingHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "seat index must be an integer")
		return
	}

	var body bookSeatBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	travellerID, err := uuid.Parse(body.TravellerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid traveller id")
		return
	}

	flight, err := h.catalog.OpenForBooking(vars["name"])
	if err != nil {
		respondServiceError(w, err)
		return
	}

	result, err := h.svc.AttemptBook(r.Context(), services.BookSeatRequest{
		FlightName:  flight.Name,
		SeatIndex:   index,
		TravellerID: travellerID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := http.StatusOK
	if result.Booked() {
		status = http.StatusCreated
	}

	respondJSON(w, status, result)
}
