package domain

import "errors"

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrFlightFull        = errors.New("all seats have been booked")
	ErrFlightDeparted    = errors.New("flight has departed")
	ErrDuplicateFlight   = errors.New("flight already scheduled")
	ErrInvalidFlight     = errors.New("invalid flight")
	ErrSeatOutOfRange    = errors.New("seat index out of range")
	ErrTravellerNotFound = errors.New("traveller not found")
	ErrInvalidTraveller  = errors.New("invalid traveller")
	ErrUnknownAddon      = errors.New("unknown add-on")
)
