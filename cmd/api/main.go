package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/multiplexhq/cinema-reservation-system/internal/app"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	err := app.Run()
	if err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
