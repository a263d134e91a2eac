package cinema

import (
	"fmt"

	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

// PricingPolicy maps a seat category to its price.
type PricingPolicy interface {
	PriceOf(category domain.SeatCategory) decimal.Decimal
}

var (
	adultPrice   = decimal.RequireFromString("25.00")
	studentPrice = decimal.RequireFromString("18.00")
	childPrice   = decimal.RequireFromString("12.50")
)

type StandardPricingPolicy struct{}

func (StandardPricingPolicy) PriceOf(category domain.SeatCategory) decimal.Decimal {
	switch category {
	case domain.SeatCategoryAdult:
		return adultPrice
	case domain.SeatCategoryStudent:
		return studentPrice
	case domain.SeatCategoryChild:
		return childPrice
	}

	// An unknown category reaching the pricing layer is a defect, not a
	// recoverable request failure.
	panic(fmt.Sprintf("unknown seat category: %q", category))
}

func totalPrice(policy PricingPolicy, seats []domain.ReservedSeat) decimal.Decimal {
	total := decimal.Zero

	for _, seat := range seats {
		total = total.Add(policy.PriceOf(seat.Category))
	}

	return total
}
