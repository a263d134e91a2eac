package domain

import (
	"context"
	"time"
)

// SeatCategory is a closed set; pricing handles every variant exhaustively and
// treats anything else as a programming error.
type SeatCategory string

const (
	SeatCategoryAdult   SeatCategory = "ADULT"
	SeatCategoryStudent SeatCategory = "STUDENT"
	SeatCategoryChild   SeatCategory = "CHILD"
)

func (c SeatCategory) IsValid() bool {
	switch c {
	case SeatCategoryAdult, SeatCategoryStudent, SeatCategoryChild:
		return true
	}

	return false
}

// Seat is a (row, column) pair, 1-based, bounded by the owning room's
// dimensions.
type Seat struct {
	Row    int
	Column int
}

type ReservedSeat struct {
	Row      int
	Column   int
	Category SeatCategory
}

type Reservation struct {
	ID             int
	ScreeningID    int
	UserName       string
	UserSurname    string
	ExpirationTime time.Time
	Seats          []ReservedSeat
	Paid           bool
	CreatedAt      time.Time
}

// ActiveAt reports whether the reservation still blocks its seats at the given
// instant: it has been paid for, or its hold has not yet expired.
func (r Reservation) ActiveAt(now time.Time) bool {
	return r.Paid || r.ExpirationTime.After(now)
}

type ReservationRepository interface {
	// Create persists the reservation and assigns its identity.
	Create(ctx context.Context, reservation *Reservation) error
	GetByScreeningId(ctx context.Context, screeningId int) ([]Reservation, error)
}
