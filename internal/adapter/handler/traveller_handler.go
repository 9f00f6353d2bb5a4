package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
	"github.com/srgjo27/airline_inventory/internal/core/services"
)

type TravellerHandler struct {
	svc *services.TravellerService
}

func NewTravellerHandler(svc *services.TravellerService) *TravellerHandler {
	return &TravellerHandler{svc: svc}
}

func (h *TravellerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	t, err := h.svc.Register(body.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, t.View())
}

func (h *TravellerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid traveller id")
		return
	}

	t, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, t.View())
}

// ListAddons handles GET /api/addons
func (h *TravellerHandler) ListAddons(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Addons())
}

// PurchaseAddon handles POST /api/travellers/{id}/addons with {"code": "..."}.
func (h *TravellerHandler) PurchaseAddon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid traveller id")
		return
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	t, err := h.svc.PurchaseAddon(id, body.Code)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, t.View())
}
