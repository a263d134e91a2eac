package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/multiplexhq/cinema-reservation-system/api"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Seat maps change on every reservation, so cached copies are only kept for a
// few seconds and are dropped eagerly when a reservation succeeds.
const seatMapCacheTTL = 10 * time.Second

func seatMapCacheKey(screeningID int) string {
	return fmt.Sprintf("screening_seats:%d", screeningID)
}

func (app *Application) ListScreenings(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimeParam(r, "from")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to, err := parseTimeParam(r, "to")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if to.Before(from) {
		app.badRequestResponse(w, r, fmt.Errorf("'to' must not be before 'from'"))
		return
	}

	screenings, err := app.cinema.ListAvailableScreenings(r.Context(), from, to)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ScreeningListResponse{
		Screenings: toApiScreenings(screenings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreeningSeats(w http.ResponseWriter, r *http.Request, screeningID int) {
	if cached, ok := app.cachedSeatMap(r.Context(), screeningID); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	info, err := app.cinema.GetScreeningSeatsInfo(r.Context(), screeningID)
	if err != nil {
		var notFound *domain.ScreeningNotFoundError

		switch {
		case errors.As(err, &notFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ScreeningSeatsResponse{
		ScreeningId:    info.ScreeningID,
		RoomName:       info.RoomName,
		AvailableSeats: toApiSeats(info.AvailableSeats),
	}

	app.cacheSeatMap(r.Context(), screeningID, resp)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// cachedSeatMap returns the raw cached response body, if any. Cache trouble
// is logged and treated as a miss, never as a request failure.
func (app *Application) cachedSeatMap(ctx context.Context, screeningID int) ([]byte, bool) {
	if app.redis == nil {
		return nil, false
	}

	cached, err := app.redis.Get(ctx, seatMapCacheKey(screeningID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			app.logger.Warn("seat map cache read failed", "screening_id", screeningID, "error", err)
		}

		return nil, false
	}

	return cached, true
}

func (app *Application) cacheSeatMap(ctx context.Context, screeningID int, resp api.ScreeningSeatsResponse) {
	if app.redis == nil {
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return
	}

	err = app.redis.Set(ctx, seatMapCacheKey(screeningID), body, seatMapCacheTTL).Err()
	if err != nil {
		app.logger.Warn("seat map cache write failed", "screening_id", screeningID, "error", err)
	}
}

func (app *Application) invalidateSeatMapCache(ctx context.Context, screeningID int) {
	if app.redis == nil {
		return
	}

	err := app.redis.Del(ctx, seatMapCacheKey(screeningID)).Err()
	if err != nil {
		app.logger.Warn("seat map cache invalidation failed", "screening_id", screeningID, "error", err)
	}
}

func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("query parameter %q is required", name)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("query parameter %q must be an RFC 3339 timestamp", name)
	}

	return t, nil
}

func toApiScreenings(screenings []domain.AvailableScreening) []api.AvailableScreening {
	result := make([]api.AvailableScreening, len(screenings))

	for i, s := range screenings {
		result[i] = api.AvailableScreening{
			ScreeningId: s.ScreeningID,
			MovieTitle:  s.MovieTitle,
			StartTime:   s.StartTime.UTC(),
		}
	}

	return result
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	result := make([]api.Seat, len(seats))

	for i, seat := range seats {
		result[i] = api.Seat{Row: seat.Row, Column: seat.Column}
	}

	return result
}
