package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Flights    *FlightHandler
	Bookings   *BookingHandler
	Travellers *TravellerHandler
	Reports    *ReportHandler
}

// NewRouter creates and configures the HTTP router
func NewRouter(h Handlers, logger *slog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(logger))

	api := r.PathPrefix("/api").Subrouter()

	// Flights. search is registered before {name} so it is not taken as a name.
	api.HandleFunc("/flights", h.Flights.CreateFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights", h.Flights.ListFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/search", h.Flights.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{name}", h.Flights.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{name}", h.Flights.DeleteFlight).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/flights/{name}/seats", h.Flights.GetSeats).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{name}/depart", h.Flights.DepartFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{name}/seats/{index}/book", h.Bookings.BookSeat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{name}/ws", h.Flights.Watch)

	// Travellers
	api.HandleFunc("/travellers", h.Travellers.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/travellers/{id}", h.Travellers.Get).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/travellers/{id}/addons", h.Travellers.PurchaseAddon).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/addons", h.Travellers.ListAddons).Methods(http.MethodGet, http.MethodOptions)

	// Departed flights
	api.HandleFunc("/departures", h.Reports.Departures).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/departures/fully-booked", h.Reports.FullyBooked).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/analytics", h.Reports.Analytics).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The websocket upgrade needs the raw writer for Hijack.
			if websocketUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

func websocketUpgrade(r *http.Request) bool {
	return r.Header.Get("Upgrade") == "websocket"
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
