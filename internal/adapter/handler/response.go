package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps core errors to HTTP status codes. Anything
// unrecognised is reported as a 500 without leaking the message.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrTravellerNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrFlightFull), errors.Is(err, domain.ErrFlightDeparted), errors.Is(err, domain.ErrDuplicateFlight):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidFlight), errors.Is(err, domain.ErrInvalidTraveller),
		errors.Is(err, domain.ErrSeatOutOfRange), errors.Is(err, domain.ErrUnknownAddon):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "booking timed out")
	case errors.Is(err, services.ErrPoolClosed), errors.Is(err, services.ErrDispatcherClosed):
		respondError(w, http.StatusServiceUnavailable, "service shutting down")
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
