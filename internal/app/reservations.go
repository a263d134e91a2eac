package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/multiplexhq/cinema-reservation-system/api"
	"github.com/multiplexhq/cinema-reservation-system/internal/cinema"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

const reservationConfirmationTemplate = "reservation_confirmation.tmpl"

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request, screeningID int) {
	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	cmd := cinema.ReservationCommand{
		ScreeningID: screeningID,
		UserName:    input.User.Name,
		UserSurname: input.User.Surname,
		Seats:       toDomainSeats(input.Seats),
	}

	summary, err := app.cinema.ReserveSeats(r.Context(), cmd)
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	app.invalidateSeatMapCache(r.Context(), screeningID)

	if input.User.Email != "" {
		app.sendConfirmationEmail(input.User, summary)
	}

	resp := api.ReservationSummaryResponse{
		ReservationId:  summary.ReservationID,
		ExpirationTime: summary.ExpirationTime,
		TotalCost:      summary.TotalCost,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// reservationErrorResponse maps the reservation failure kinds onto transport
// status codes: the not-found kinds become 404, every other business rule
// violation becomes 400.
func (app *Application) reservationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		screeningNotFound *domain.ScreeningNotFoundError
		seatNotFound      *domain.SeatNotFoundError
		reservationTime   *domain.ReservationTimeError
		invalidUser       *domain.InvalidUserNameOrSurnameError
		noSeat            *domain.NoSeatToReserveError
		seatReserved      *domain.SeatReservedError
		seatGap           *domain.SeatGapError
	)

	switch {
	case errors.As(err, &screeningNotFound), errors.As(err, &seatNotFound):
		app.notFoundResponseWithErr(w, r, err)
	case errors.As(err, &reservationTime),
		errors.As(err, &invalidUser),
		errors.As(err, &noSeat),
		errors.As(err, &seatReserved),
		errors.As(err, &seatGap):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendConfirmationEmail(user api.BookingUser, summary *cinema.ReservationSummary) {
	data := map[string]any{
		"ReservationID":  summary.ReservationID,
		"UserName":       user.Name,
		"MovieTitle":     summary.MovieTitle,
		"StartTime":      summary.StartTime.Format(time.RFC1123),
		"ExpirationTime": summary.ExpirationTime.Format(time.RFC1123),
		"TotalCost":      summary.TotalCost.StringFixed(2),
	}

	app.background(func() {
		err := app.mailer.Send(user.Email, reservationConfirmationTemplate, data)
		if err != nil {
			app.logger.Error("failed to send reservation confirmation email",
				"reservation_id", summary.ReservationID, "error", err)
		}
	})
}

func toDomainSeats(seats []api.SeatToReserve) []domain.ReservedSeat {
	result := make([]domain.ReservedSeat, len(seats))

	for i, seat := range seats {
		result[i] = domain.ReservedSeat{
			Row:      seat.Row,
			Column:   seat.Column,
			Category: domain.SeatCategory(seat.Category),
		}
	}

	return result
}
