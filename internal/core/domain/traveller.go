package domain

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Traveller carries the append-only ledger of one booking session.
type Traveller struct {
	ID   uuid.UUID
	Name string

	mu        sync.Mutex
	ledger    []string
	addons    []string
	totalCost float64
}

func NewTraveller(name string) (*Traveller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidTraveller
	}

	return &Traveller{ID: uuid.New(), Name: name}, nil
}

func (t *Traveller) RecordSeat(flightName string, seat SeatView, price float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ledger = append(t.ledger, LedgerEntry(seat, flightName, t.Name, price))
	t.totalCost += price
}

func (t *Traveller) RecordAddon(addon Addon) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.addons = append(t.addons, AddonEntry(addon, t.Name))
	t.totalCost += addon.Cost
}

func (t *Traveller) Ledger() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.ledger...)
}

func (t *Traveller) Addons() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.addons...)
}

func (t *Traveller) TotalCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalCost
}

type TravellerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Ledger    []string  `json:"ledger"`
	Addons    []string  `json:"addons"`
	TotalCost float64   `json:"total_cost"`
}

func (t *Traveller) View() TravellerView {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TravellerView{
		ID:        t.ID,
		Name:      t.Name,
		Ledger:    append([]string{}, t.ledger...),
		Addons:    append([]string{}, t.addons...),
		TotalCost: t.totalCost,
	}
}
