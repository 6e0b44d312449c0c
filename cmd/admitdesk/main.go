package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/oakmed/admitdesk/internal/config"
	"github.com/oakmed/admitdesk/internal/console"
	"github.com/oakmed/admitdesk/internal/events"
	"github.com/oakmed/admitdesk/internal/notify"
	"github.com/oakmed/admitdesk/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	bus := events.NewBus()
	notify.NewService(os.Stdout, logger).Register(bus)

	session := console.New(os.Stdin, os.Stdout, bus, cfg, logger)
	if err := session.Run(); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}
}
