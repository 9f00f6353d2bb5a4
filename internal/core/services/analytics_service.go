package services

import "github.com/srgjo27/airline_inventory/internal/core/domain"

type AnalyticsService struct {
	departures *domain.DepartureLog
}

func NewAnalyticsService(departures *domain.DepartureLog) *AnalyticsService {
	return &AnalyticsService{departures: departures}
}

func (s *AnalyticsService) Snapshot() domain.AnalyticsSnapshot {
	return ComputeAnalytics(s.departures.Entries())
}

// ComputeAnalytics derives the mode statistics from departed flights given
// in departure order. Booking statistics count every booked seat.
func ComputeAnalytics(flights []*domain.Flight) domain.AnalyticsSnapshot {
	var (
		destinations []string
		depMonths    []int
		bookDays     []int
		bookMonths   []int
		bookYears    []int
	)

	for _, f := range flights {
		destinations = append(destinations, f.Destination)
		depMonths = append(depMonths, int(f.Departure.Month()))

		for _, seat := range f.SeatViews() {
			if seat.Status != domain.SeatBooked || seat.BookedAt == nil {
				continue
			}
			at := *seat.BookedAt
			bookDays = append(bookDays, domain.DayOfWeek(at))
			bookMonths = append(bookMonths, int(at.Month()))
			bookYears = append(bookYears, at.Year())
		}
	}

	var snap domain.AnalyticsSnapshot
	snap.FrequentDestination, _ = mode(destinations)
	snap.FrequentDepartureMonth, _ = mode(depMonths)
	snap.FrequentBookingDay, _ = mode(bookDays)
	snap.FrequentBookingMonth, _ = mode(bookMonths)
	snap.FrequentBookingYear, _ = mode(bookYears)

	return snap
}

// mode returns the most frequent value. On a tie the value seen first
// wins. ok is false for an empty input.
func mode[T comparable](values []T) (winner T, ok bool) {
	var unique []T
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			unique = append(unique, v)
		}
	}

	best := 0
	for _, u := range unique {
		count := 0
		for _, v := range values {
			if v == u {
				count++
			}
		}
		if count > best {
			best = count
			winner = u
			ok = true
		}
	}

	return winner, ok
}
