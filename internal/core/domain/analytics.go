package domain

import (
	"strconv"
	"time"
)

// AnalyticsSnapshot is recomputed for every query. Zero values mean the
// departure log held nothing to count.
type AnalyticsSnapshot struct {
	FrequentDestination    string `json:"frequent_destination"`
	FrequentDepartureMonth int    `json:"frequent_departure_month"`
	FrequentBookingDay     int    `json:"frequent_booking_day"`
	FrequentBookingMonth   int    `json:"frequent_booking_month"`
	FrequentBookingYear    int    `json:"frequent_booking_year"`
}

// MonthName maps 1-12 to January-December and anything else to "".
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return time.Month(m).String()
}

// DayName maps 1=Sunday through 7=Saturday.
func DayName(d int) string {
	if d < 1 || d > 7 {
		return ""
	}
	return time.Weekday(d - 1).String()
}

// DayOfWeek numbers t's weekday from 1 (Sunday) to 7 (Saturday).
func DayOfWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

func (a AnalyticsSnapshot) DepartureMonthName() string {
	return MonthName(a.FrequentDepartureMonth)
}

// BookingPeriod renders "<day> | <month> | <year>".
func (a AnalyticsSnapshot) BookingPeriod() string {
	year := ""
	if a.FrequentBookingYear != 0 {
		year = strconv.Itoa(a.FrequentBookingYear)
	}
	return DayName(a.FrequentBookingDay) + " | " + MonthName(a.FrequentBookingMonth) + " | " + year
}
