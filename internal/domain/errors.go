package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrRecordNotFound = errors.New("record not found")

// The error types below are request-local business failures. They carry the
// offending parameters so the transport layer can build messages without
// parsing error strings.

type ScreeningNotFoundError struct {
	ScreeningID int
}

func (e *ScreeningNotFoundError) Error() string {
	return fmt.Sprintf("screening not found with id: %d", e.ScreeningID)
}

type ReservationTimeError struct {
	ScreeningID int
	StartTime   time.Time
}

func (e *ReservationTimeError) Error() string {
	return fmt.Sprintf("reservations for screening %d closed, screening starts at %s",
		e.ScreeningID, e.StartTime.Format(time.RFC3339))
}

type InvalidUserNameOrSurnameError struct {
	Name    string
	Surname string
}

func (e *InvalidUserNameOrSurnameError) Error() string {
	return fmt.Sprintf("invalid booking user name or surname: %q %q", e.Name, e.Surname)
}

type NoSeatToReserveError struct{}

func (e *NoSeatToReserveError) Error() string {
	return "no seat to reserve"
}

type SeatNotFoundError struct {
	Row      int
	Column   int
	RoomName string
}

func (e *SeatNotFoundError) Error() string {
	return fmt.Sprintf("seat (%d, %d) does not exist in room %s", e.Row, e.Column, e.RoomName)
}

type SeatReservedError struct {
	Row    int
	Column int
}

func (e *SeatReservedError) Error() string {
	return fmt.Sprintf("seat (%d, %d) is already reserved", e.Row, e.Column)
}

type SeatGapError struct {
	Row    int
	Column int
}

func (e *SeatGapError) Error() string {
	return fmt.Sprintf("reserving seat (%d, %d) would leave a single empty seat next to it", e.Row, e.Column)
}
