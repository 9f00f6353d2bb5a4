package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DepartureLog is append-only. Callers guarantee a flight is pushed once.
type DepartureLog struct {
	mu      sync.RWMutex
	entries []*Flight
}

func NewDepartureLog() *DepartureLog {
	return &DepartureLog{}
}

func (l *DepartureLog) Push(f *Flight) {
	l.mu.Lock()
	l.entries = append(l.entries, f)
	l.mu.Unlock()
}

func (l *DepartureLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Entries returns the departed flights in departure order.
func (l *DepartureLog) Entries() []*Flight {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*Flight(nil), l.entries...)
}

func (l *DepartureLog) FullyBooked() []*Flight {
	var full []*Flight
	for _, f := range l.Entries() {
		if f.CountBooked() == f.Capacity() {
			full = append(full, f)
		}
	}
	return full
}

// DepartureRecord is the frozen form of a departed flight handed to archives.
type DepartureRecord struct {
	FlightID    uuid.UUID
	Name        string
	Type        string
	Origin      string
	Destination string
	Arrival     time.Time
	Departure   time.Time
	Capacity    int
	BookedCount int
	FinalPrice  float64
	DepartedAt  time.Time
	Seats       []SeatView
}

func (f *Flight) Record(departedAt time.Time) DepartureRecord {
	return DepartureRecord{
		FlightID:    f.ID,
		Name:        f.Name,
		Type:        f.Type,
		Origin:      f.Origin,
		Destination: f.Destination,
		Arrival:     f.Arrival,
		Departure:   f.Departure,
		Capacity:    f.Capacity(),
		BookedCount: f.BookedCount(),
		FinalPrice:  f.CurrentPrice(),
		DepartedAt:  departedAt,
		Seats:       f.SeatViews(),
	}
}

func (r DepartureRecord) Occupants() []string {
	var names []string
	for _, s := range r.Seats {
		if s.Status == SeatBooked {
			names = append(names, s.OccupantName)
		}
	}
	return names
}
