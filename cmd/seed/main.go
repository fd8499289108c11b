package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/quietday/api/internal/config"
	"github.com/quietday/api/internal/database"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	// Parse command line flags
	filePath := flag.String("file", "", "Path to a TSV quote file (original<TAB>zh-tw<TAB>zh-cn<TAB>en); empty uses the built-in set")
	batchSize := flag.Int("batch", 100, "Batch size for inserts")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migration
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var seeds []quotes.QuoteSeed
	if *filePath != "" {
		seeds, err = loadQuoteFile(*filePath)
		if err != nil {
			log.Fatalf("Failed to load quote file: %v", err)
		}
		log.Printf("Loaded %d quotes from %s", len(seeds), *filePath)
	} else {
		seeds = quotes.DefaultSystemQuotes
		log.Printf("Using %d built-in quotes", len(seeds))
	}

	inserted, skipped := seedSystemQuotes(db, seeds, *batchSize)
	log.Printf("Seeding complete. Inserted: %d, Skipped: %d", inserted, skipped)
}

// loadQuoteFile reads a tab-separated quote list. Only the original text is
// required; missing cleaned columns fall back to the normalized original.
func loadQuoteFile(path string) ([]quotes.QuoteSeed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var seeds []quotes.QuoteSeed
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		original := strings.TrimSpace(fields[0])
		if original == "" {
			continue
		}

		seed := quotes.QuoteSeed{OriginalText: original}
		cleaned := quotes.CleanText(original)
		seed.CleanedTextZhTw = cleaned
		seed.CleanedTextZhCn = cleaned
		seed.CleanedTextEn = cleaned
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			seed.CleanedTextZhTw = quotes.CleanText(fields[1])
		}
		if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
			seed.CleanedTextZhCn = quotes.CleanText(fields[2])
		}
		if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
			seed.CleanedTextEn = quotes.CleanText(fields[3])
		}

		seeds = append(seeds, seed)
	}

	return seeds, scanner.Err()
}

func seedSystemQuotes(db *gorm.DB, seeds []quotes.QuoteSeed, batchSize int) (inserted int, skipped int) {
	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "original_text"}},
		DoNothing: true,
	}

	for i := 0; i < len(seeds); i += batchSize {
		end := i + batchSize
		if end > len(seeds) {
			end = len(seeds)
		}

		batch := make([]model.Quote, 0, end-i)
		for _, seed := range seeds[i:end] {
			batch = append(batch, model.Quote{
				OwnerID:         model.SystemOwnerID,
				OriginalText:    seed.OriginalText,
				CleanedTextZhTw: seed.CleanedTextZhTw,
				CleanedTextZhCn: seed.CleanedTextZhCn,
				CleanedTextEn:   seed.CleanedTextEn,
			})
		}

		result := db.Clauses(conflict).Create(&batch)
		if result.Error != nil {
			log.Printf("Error inserting batch %d: %v", i/batchSize+1, result.Error)
			skipped += len(batch)
			continue
		}

		inserted += int(result.RowsAffected)
		skipped += len(batch) - int(result.RowsAffected)
	}

	return inserted, skipped
}
