package domain

import (
	"context"
	"time"
)

type Screening struct {
	ID        int
	Movie     Movie
	Room      Room
	StartTime time.Time
}

// AvailableScreening is a read model for the screening listing.
type AvailableScreening struct {
	ScreeningID int
	MovieTitle  string
	StartTime   time.Time
}

// ScreeningSeatsInfo is a read model describing which seats are still free for
// a screening. AvailableSeats is ordered row-major (row ascending, then column
// ascending).
type ScreeningSeatsInfo struct {
	ScreeningID    int
	RoomName       string
	AvailableSeats []Seat
}

type ScreeningRepository interface {
	GetById(ctx context.Context, id int) (*Screening, error)
	GetByStartTimeBetween(ctx context.Context, from, to time.Time) ([]Screening, error)
}
