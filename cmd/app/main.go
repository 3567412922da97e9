package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"AgriChain/internal/di"
	"AgriChain/pkg/config"
)

func main() {
	// Optional .env for local development; secrets like OWM_API_KEY live there.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s price_backend=%s weather=%s", cfg.Environment, cfg.Data.PriceBackend, cfg.Weather.Provider)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
