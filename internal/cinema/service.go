package cinema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// Reservations close this long before a screening starts. Booking at
	// exactly the cutoff is still accepted.
	reservationCutoff = 15 * time.Minute

	// An unpaid reservation holds its seats at most this long, and never
	// past the screening start.
	reservationHold = 24 * time.Hour
)

// ReservationCommand carries everything a single reservation attempt needs.
type ReservationCommand struct {
	ScreeningID int
	Seats       []domain.ReservedSeat
	UserName    string
	UserSurname string
}

// ReservationSummary is the result of a successful reservation. MovieTitle
// and StartTime ride along for confirmation messages.
type ReservationSummary struct {
	ReservationID  int
	ExpirationTime time.Time
	TotalCost      decimal.Decimal
	MovieTitle     string
	StartTime      time.Time
}

// Service answers availability queries and performs reservations on top of
// the screening and reservation stores.
type Service struct {
	screenings     domain.ScreeningRepository
	reservations   domain.ReservationRepository
	seatsValidator SeatsValidator
	userValidator  UserValidator
	pricing        PricingPolicy
	clock          domain.Clock
	locks          *screeningLocks
}

func NewService(
	screenings domain.ScreeningRepository,
	reservations domain.ReservationRepository,
	pricing PricingPolicy,
	clock domain.Clock) *Service {

	return &Service{
		screenings:   screenings,
		reservations: reservations,
		pricing:      pricing,
		clock:        clock,
		locks:        newScreeningLocks(),
	}
}

// ListAvailableScreenings returns screenings starting within [from, to]
// inclusive, ordered by movie title and then by start time.
func (s *Service) ListAvailableScreenings(ctx context.Context, from, to time.Time) ([]domain.AvailableScreening, error) {
	screenings, err := s.screenings.GetByStartTimeBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch screenings: %w", err)
	}

	available := make([]domain.AvailableScreening, len(screenings))
	for i, screening := range screenings {
		available[i] = domain.AvailableScreening{
			ScreeningID: screening.ID,
			MovieTitle:  screening.Movie.Title,
			StartTime:   screening.StartTime,
		}
	}

	sort.SliceStable(available, func(i, j int) bool {
		if available[i].MovieTitle != available[j].MovieTitle {
			return available[i].MovieTitle < available[j].MovieTitle
		}
		return available[i].StartTime.Before(available[j].StartTime)
	})

	return available, nil
}

// GetScreeningSeatsInfo computes which seats are not covered by any active
// reservation, in row-major order. Pure read.
func (s *Service) GetScreeningSeatsInfo(ctx context.Context, screeningID int) (*domain.ScreeningSeatsInfo, error) {
	screening, err := s.getScreening(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	occupied, err := s.occupiedSeats(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	room := screening.Room
	available := make([]domain.Seat, 0, room.RowCount*room.ColumnCount)

	for row := 1; row <= room.RowCount; row++ {
		for column := 1; column <= room.ColumnCount; column++ {
			if !occupied[row][column] {
				available = append(available, domain.Seat{Row: row, Column: column})
			}
		}
	}

	return &domain.ScreeningSeatsInfo{
		ScreeningID:    screeningID,
		RoomName:       room.Name,
		AvailableSeats: available,
	}, nil
}

// ReserveSeats runs the whole reservation flow: screening lookup, timing
// cutoff, user and seat validation, pricing, expiration and persistence. Any
// failure aborts the request with nothing persisted.
//
// The read of active reservations and the write of the new one are serialized
// per screening, so two concurrent attempts can never both validate against
// the same stale occupancy snapshot.
func (s *Service) ReserveSeats(ctx context.Context, cmd ReservationCommand) (*ReservationSummary, error) {
	screening, err := s.getScreening(ctx, cmd.ScreeningID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	if now.Add(reservationCutoff).After(screening.StartTime) {
		return nil, &domain.ReservationTimeError{
			ScreeningID: screening.ID,
			StartTime:   screening.StartTime,
		}
	}

	if err := s.userValidator.Validate(cmd.UserName, cmd.UserSurname); err != nil {
		return nil, err
	}

	// A reservation holds each physical seat once, so repeated (row, column)
	// pairs in the request collapse before pricing and persistence, matching
	// how the seat validation treats them.
	seats := dedupeSeats(cmd.Seats)

	lock := s.locks.forScreening(cmd.ScreeningID)
	lock.Lock()
	defer lock.Unlock()

	occupied, err := s.occupiedSeats(ctx, cmd.ScreeningID)
	if err != nil {
		return nil, err
	}

	if err := s.seatsValidator.Validate(seats, occupied, screening.Room); err != nil {
		return nil, err
	}

	total := totalPrice(s.pricing, seats)
	expiration := expirationTime(now, screening.StartTime)

	reservation := &domain.Reservation{
		ScreeningID:    screening.ID,
		UserName:       cmd.UserName,
		UserSurname:    cmd.UserSurname,
		ExpirationTime: expiration,
		Seats:          seats,
		Paid:           false,
	}

	err = s.reservations.Create(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("failed to persist reservation: %w", err)
	}

	return &ReservationSummary{
		ReservationID:  reservation.ID,
		ExpirationTime: expiration,
		TotalCost:      total,
		MovieTitle:     screening.Movie.Title,
		StartTime:      screening.StartTime,
	}, nil
}

func (s *Service) getScreening(ctx context.Context, screeningID int) (*domain.Screening, error) {
	screening, err := s.screenings.GetById(ctx, screeningID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.ScreeningNotFoundError{ScreeningID: screeningID}
		}

		return nil, fmt.Errorf("failed to fetch screening %d: %w", screeningID, err)
	}

	return screening, nil
}

// occupiedSeats flattens the seats of all currently active reservations of a
// screening into a row -> columns set.
func (s *Service) occupiedSeats(ctx context.Context, screeningID int) (map[int]map[int]bool, error) {
	reservations, err := s.reservations.GetByScreeningId(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for screening %d: %w", screeningID, err)
	}

	now := s.clock.Now()
	occupied := make(map[int]map[int]bool)

	for _, reservation := range reservations {
		if !reservation.ActiveAt(now) {
			continue
		}

		for _, seat := range reservation.Seats {
			if occupied[seat.Row] == nil {
				occupied[seat.Row] = make(map[int]bool)
			}
			occupied[seat.Row][seat.Column] = true
		}
	}

	return occupied, nil
}

// dedupeSeats drops repeated (row, column) pairs, keeping the first
// occurrence and its category.
func dedupeSeats(seats []domain.ReservedSeat) []domain.ReservedSeat {
	seen := make(map[domain.Seat]bool, len(seats))
	deduped := make([]domain.ReservedSeat, 0, len(seats))

	for _, seat := range seats {
		key := domain.Seat{Row: seat.Row, Column: seat.Column}
		if seen[key] {
			continue
		}

		seen[key] = true
		deduped = append(deduped, seat)
	}

	return deduped
}

// A reservation can never outlive the screening it is for.
func expirationTime(now, screeningStart time.Time) time.Time {
	expiration := now.Add(reservationHold)
	if expiration.After(screeningStart) {
		return screeningStart
	}

	return expiration
}
