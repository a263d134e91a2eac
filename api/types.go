// Package api holds the JSON types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type AvailableScreening struct {
	ScreeningId int       `json:"screeningId"`
	MovieTitle  string    `json:"movieTitle"`
	StartTime   time.Time `json:"startTime"`
}

type ScreeningListResponse struct {
	Screenings []AvailableScreening `json:"screenings"`
}

type Seat struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type ScreeningSeatsResponse struct {
	ScreeningId    int    `json:"screeningId"`
	RoomName       string `json:"roomName"`
	AvailableSeats []Seat `json:"availableSeats"`
}

type SeatToReserve struct {
	Row      int    `json:"row" validate:"required,min=1"`
	Column   int    `json:"column" validate:"required,min=1"`
	Category string `json:"category" validate:"required,seat_category"`
}

type BookingUser struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateReservationRequest struct {
	// No required tag on Seats: an empty seat list is a business rule
	// violation the reservation core reports itself.
	Seats []SeatToReserve `json:"seats" validate:"dive"`
	User  BookingUser     `json:"user" validate:"required"`
}

type ReservationSummaryResponse struct {
	ReservationId  int             `json:"reservationId"`
	ExpirationTime time.Time       `json:"expirationTime"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}
