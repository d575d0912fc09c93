package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/fakeapi"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.App.LogLevel)

	api := fakeapi.New(cfg.DevServer.JWTSecret,
		fakeapi.WithCORSOrigins(cfg.DevServer.CORSOrigins...),
		fakeapi.WithRequestLogging(),
	)

	if cfg.DevServer.Seed {
		u, err := api.Seed()
		if err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}

		slog.Info("seeded demo account", "email", u.Email, "password", fakeapi.DemoPassword)
	}

	port := fmt.Sprintf(":%d", cfg.DevServer.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, api.Handler()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
