package main

import (
	"flag"
	"log"

	"github.com/quietday/api/internal/config"
	"github.com/quietday/api/internal/database"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
)

// One-shot library backfill: seed the system master set, then top up every
// user below the threshold. Same work the background scheduler does on a
// ticker, packaged for cron or a manual run after expanding the master set.
func main() {
	threshold := flag.Int("threshold", 0, "Override the seed threshold (0 uses config)")
	user := flag.String("user", "", "Backfill a single user id instead of all users")
	flag.Parse()

	cfg := config.Load()
	if *threshold > 0 {
		cfg.SeedThreshold = *threshold
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := quotes.EnsureSystemQuotesSeeded(db); err != nil {
		log.Fatalf("Failed to seed system quotes: %v", err)
	}

	seeder := quotes.NewSeeder(db, cfg.SeedThreshold, cfg.SeedBatchSize)

	var userIDs []string
	if *user != "" {
		userIDs = []string{*user}
	} else if err := db.Model(&model.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	totalInserted := 0
	seeded := 0
	for _, userID := range userIDs {
		inserted, err := seeder.EnsureUserQuotesSeeded(userID)
		if err != nil {
			log.Printf("Error seeding user %s: %v", userID, err)
			continue
		}
		if inserted > 0 {
			seeded++
			totalInserted += inserted
			log.Printf("Seeded %d quotes for user %s", inserted, userID)
		}
	}

	log.Printf("Backfill complete. Users seeded: %d/%d, quotes inserted: %d", seeded, len(userIDs), totalInserted)
}
