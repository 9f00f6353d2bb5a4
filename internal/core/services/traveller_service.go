package services

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

// TravellerService keeps the travellers of the running session. Nothing
// here outlives the process.
type TravellerService struct {
	mu         sync.RWMutex
	travellers map[uuid.UUID]*domain.Traveller
	logger     *slog.Logger
}

func NewTravellerService(logger *slog.Logger) *TravellerService {
	return &TravellerService{
		travellers: make(map[uuid.UUID]*domain.Traveller),
		logger:     logger,
	}
}

func (s *TravellerService) Register(name string) (*domain.Traveller, error) {
	t, err := domain.NewTraveller(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.travellers[t.ID] = t
	s.mu.Unlock()

	s.logger.Debug("traveller registered", "traveller_id", t.ID, "name", t.Name)

	return t, nil
}

func (s *TravellerService) Get(id uuid.UUID) (*domain.Traveller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.travellers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTravellerNotFound, id)
	}

	return t, nil
}

func (s *TravellerService) PurchaseAddon(id uuid.UUID, code string) (*domain.Traveller, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	addon, err := domain.LookupAddon(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, code)
	}

	t.RecordAddon(addon)
	s.logger.Debug("add-on purchased", "traveller_id", id, "addon", addon.Name, "cost", addon.Cost)

	return t, nil
}
