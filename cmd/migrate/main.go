package main

import (
	"flag"
	"log"
	"os"

	"go-jobboard-backend/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if err := database.Migrate(dsn, *direction); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migration %s completed", *direction)
}
