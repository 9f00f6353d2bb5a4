package services

import (
	"fmt"

	"github.com/srgjo27/airline_inventory/internal/core/domain"
)

const DefaultSurcharge = 0.10

// PricingPolicy raises a flight's seat price by Surcharge after every
// confirmed booking, compounding.
type PricingPolicy struct {
	Surcharge float64
}

func NewPricingPolicy(surcharge float64) (PricingPolicy, error) {
	if surcharge < 0 {
		return PricingPolicy{}, fmt.Errorf("surcharge must not be negative, got %f", surcharge)
	}
	return PricingPolicy{Surcharge: surcharge}, nil
}

func (p PricingPolicy) Next(price float64) float64 {
	return price * (1 + p.Surcharge)
}

// OnBookingCommitted runs once per successful booking. Besides raising the
// flight price it overwrites the recorded price of every booked seat,
// including seats booked long before, with the new price.
func (p PricingPolicy) OnBookingCommitted(f *domain.Flight) float64 {
	return f.Reprice(p.Next)
}
