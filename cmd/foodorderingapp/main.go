package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/app"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/config"
)

func main() {
	// .env is optional; deployed environments set real variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
