package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

func (p *PostgresReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (screening_id, user_name, user_surname, expiration_time, paid)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			reservation.ScreeningID,
			reservation.UserName,
			reservation.UserSurname,
			reservation.ExpirationTime,
			reservation.Paid).Scan(&reservation.ID, &reservation.CreatedAt)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ErrRecordNotFound
			}

			return err
		}

		rows := make([][]any, 0, len(reservation.Seats))
		for _, seat := range reservation.Seats {
			rows = append(rows, []any{
				reservation.ID,
				reservation.ScreeningID,
				seat.Row,
				seat.Column,
				string(seat.Category),
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"reserved_seats"},
			[]string{"reservation_id", "screening_id", "seat_row", "seat_col", "category"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

func (p *PostgresReservationRepository) GetByScreeningId(
	ctx context.Context,
	screeningId int) ([]domain.Reservation, error) {

	query := `
		SELECT
			r.id,
			r.screening_id,
			r.user_name,
			r.user_surname,
			r.expiration_time,
			r.paid,
			r.created_at,
			rs.seat_row,
			rs.seat_col,
			rs.category
		FROM reservations r
		JOIN reserved_seats rs ON rs.reservation_id = r.id
		WHERE r.screening_id = $1
		ORDER BY r.id, rs.seat_row, rs.seat_col
	`

	rows, err := p.db.Query(ctx, query, screeningId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)

	for rows.Next() {
		var (
			reservation domain.Reservation
			seat        domain.ReservedSeat
			category    string
		)

		err := rows.Scan(
			&reservation.ID,
			&reservation.ScreeningID,
			&reservation.UserName,
			&reservation.UserSurname,
			&reservation.ExpirationTime,
			&reservation.Paid,
			&reservation.CreatedAt,
			&seat.Row,
			&seat.Column,
			&category,
		)
		if err != nil {
			return nil, err
		}

		seat.Category = domain.SeatCategory(category)

		// Rows are ordered by reservation id, so consecutive seat rows of
		// the same reservation fold into the previous entry.
		if n := len(reservations); n > 0 && reservations[n-1].ID == reservation.ID {
			reservations[n-1].Seats = append(reservations[n-1].Seats, seat)
			continue
		}

		reservation.Seats = []domain.ReservedSeat{seat}
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
