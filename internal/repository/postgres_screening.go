package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) GetById(ctx context.Context, id int) (*domain.Screening, error) {
	query := `
		SELECT
			s.id,
			s.start_time,
			m.id,
			m.title,
			m.duration_minutes,
			r.id,
			r.name,
			r.row_count,
			r.column_count
		FROM screenings s
		JOIN movies m ON s.movie_id = m.id
		JOIN rooms r ON s.room_id = r.id
		WHERE s.id = $1
	`

	var screening domain.Screening

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.StartTime,
		&screening.Movie.ID,
		&screening.Movie.Title,
		&screening.Movie.Duration,
		&screening.Room.ID,
		&screening.Room.Name,
		&screening.Room.RowCount,
		&screening.Room.ColumnCount,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &screening, nil
}

func (p *PostgresScreeningRepository) GetByStartTimeBetween(
	ctx context.Context,
	from, to time.Time) ([]domain.Screening, error) {

	query := `
		SELECT
			s.id,
			s.start_time,
			m.id,
			m.title,
			m.duration_minutes,
			r.id,
			r.name,
			r.row_count,
			r.column_count
		FROM screenings s
		JOIN movies m ON s.movie_id = m.id
		JOIN rooms r ON s.room_id = r.id
		WHERE s.start_time BETWEEN $1 AND $2
		ORDER BY m.title, s.start_time
	`

	rows, err := p.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := make([]domain.Screening, 0)

	for rows.Next() {
		var screening domain.Screening

		err := rows.Scan(
			&screening.ID,
			&screening.StartTime,
			&screening.Movie.ID,
			&screening.Movie.Title,
			&screening.Movie.Duration,
			&screening.Room.ID,
			&screening.Room.Name,
			&screening.Room.RowCount,
			&screening.Room.ColumnCount,
		)
		if err != nil {
			return nil, err
		}

		screenings = append(screenings, screening)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}
