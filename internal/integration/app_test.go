package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/multiplexhq/cinema-reservation-system/internal/app"
	"github.com/multiplexhq/cinema-reservation-system/internal/cinema"
	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
	"github.com/multiplexhq/cinema-reservation-system/internal/mailer"
	"github.com/multiplexhq/cinema-reservation-system/internal/repository"
	appvalidator "github.com/multiplexhq/cinema-reservation-system/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  redis.UniversalClient
	Mailer *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	screeningRepo := repository.NewPostgresScreeningRepository(db)
	reservationRepo := repository.NewPostgresReservationRepository(db)

	service := cinema.NewService(
		screeningRepo,
		reservationRepo,
		cinema.StandardPricingPolicy{},
		domain.SystemClock{},
	)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		service,
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Mailer: mockMailer,
	}, nil
}
