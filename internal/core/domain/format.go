package domain

import (
	"fmt"
	"strconv"
	"time"
)

// FormatTimestamp renders t as H:MM D/M/YYYY.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d:%02d %d/%d/%d", t.Hour(), t.Minute(), t.Day(), int(t.Month()), t.Year())
}

func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// LedgerEntry is the invoice line written for a confirmed seat.
func LedgerEntry(seat SeatView, flightName, passenger string, price float64) string {
	bookedAt := ""
	if seat.BookedAt != nil {
		bookedAt = FormatTimestamp(*seat.BookedAt)
	}

	return fmt.Sprintf("SEAT %d | BOOKING TIME: %s | AIRLINE: %s | BOOKED UNDER: %s | SEAT PRICE: %s",
		seat.Position, bookedAt, flightName, passenger, FormatPrice(price))
}

func AddonEntry(addon Addon, passenger string) string {
	return fmt.Sprintf("ADD-ON PURCHASED: %s | COST: %s | BOOKED UNDER: %s",
		addon.Name, strconv.FormatFloat(addon.Cost, 'f', -1, 64), passenger)
}
