// Command seed writes synthetic readings straight into the store, bypassing
// the API. Useful for local demos against an empty database.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"diatrack.example/go-diatrack/internal/models"
	"diatrack.example/go-diatrack/internal/repository"
	"diatrack.example/go-diatrack/internal/synthetic"
	"diatrack.example/go-diatrack/pkg/database"
)

func main() {
	dbPath := flag.String("db", "./diabetes_tracker.db", "path to the sqlite store")
	userID := flag.String("user", "testuser", "user id to own the readings")
	flag.Parse()

	db, err := database.NewConnection(*dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Reading{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	repo := repository.NewGormReadingRepository(db)
	ctx := context.Background()

	series := synthetic.Readings(*userID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Now())
	for i := range series {
		if err := repo.Create(ctx, &series[i]); err != nil {
			log.Fatalf("failed to store reading: %v", err)
		}
	}
	log.Printf("seeded %d readings for %s", len(series), *userID)
}
