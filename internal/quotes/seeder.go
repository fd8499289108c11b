package quotes

import (
	"fmt"
	"log"

	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// quoteConflictTarget matches the unique (owner_id, original_text) index, so
// a retried seed skips rows it already wrote instead of failing.
var quoteConflictTarget = clause.OnConflict{
	Columns:   []clause.Column{{Name: "owner_id"}, {Name: "original_text"}},
	DoNothing: true,
}

// EnsureSystemQuotesSeeded inserts the built-in master library if no
// system-owned quote exists yet. Safe to call on every request.
func EnsureSystemQuotesSeeded(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Quote{}).Where("owner_id = ?", model.SystemOwnerID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count system quotes: %w", err)
	}
	if count > 0 || len(DefaultSystemQuotes) == 0 {
		return nil
	}

	rows := make([]model.Quote, len(DefaultSystemQuotes))
	for i, seed := range DefaultSystemQuotes {
		rows[i] = model.Quote{
			OwnerID:         model.SystemOwnerID,
			OriginalText:    seed.OriginalText,
			CleanedTextEn:   seed.CleanedTextEn,
			CleanedTextZhTw: seed.CleanedTextZhTw,
			CleanedTextZhCn: seed.CleanedTextZhCn,
		}
	}

	if err := db.Clauses(quoteConflictTarget).CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("failed to insert system quotes: %w", err)
	}

	log.Printf("[seeder] Seeded %d system quotes", len(rows))
	return nil
}

// Seeder copies missing master quotes into users' personal libraries.
type Seeder struct {
	db        *gorm.DB
	threshold int
	batchSize int
}

func NewSeeder(db *gorm.DB, threshold, batchSize int) *Seeder {
	if threshold <= 0 {
		threshold = 100
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Seeder{db: db, threshold: threshold, batchSize: batchSize}
}

// CountUserQuotes returns the size of a user's personal library.
func (s *Seeder) CountUserQuotes(userID string) (int64, error) {
	var count int64
	if err := s.db.Model(&model.Quote{}).Where("owner_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count user quotes: %w", err)
	}
	return count, nil
}

// EnsureUserQuotesSeeded tops up a user's library from the system master set
// and returns how many quotes were inserted. Idempotent: runs are
// deduplicated on original_text and duplicate-key conflicts are skipped, so
// concurrent or repeated calls converge on the same library. Insert errors
// other than duplicates abort and surface.
func (s *Seeder) EnsureUserQuotesSeeded(userID string) (int, error) {
	count, err := s.CountUserQuotes(userID)
	if err != nil {
		return 0, err
	}
	if count >= int64(s.threshold) {
		return 0, nil
	}

	var master []model.Quote
	if err := s.db.Where("owner_id = ?", model.SystemOwnerID).Order("created_at ASC").Find(&master).Error; err != nil {
		return 0, fmt.Errorf("failed to load system quotes: %w", err)
	}
	if len(master) == 0 {
		log.Printf("[seeder] No system quotes found, cannot seed user %s", userID)
		return 0, nil
	}

	var existingTexts []string
	if err := s.db.Model(&model.Quote{}).Where("owner_id = ?", userID).Pluck("original_text", &existingTexts).Error; err != nil {
		return 0, fmt.Errorf("failed to load existing quote texts: %w", err)
	}
	existing := make(map[string]struct{}, len(existingTexts))
	for _, t := range existingTexts {
		existing[t] = struct{}{}
	}

	var missing []model.Quote
	for _, q := range master {
		if _, ok := existing[q.OriginalText]; ok {
			continue
		}
		missing = append(missing, model.Quote{
			OwnerID:         userID,
			OriginalText:    q.OriginalText,
			CleanedTextEn:   q.CleanedTextEn,
			CleanedTextZhTw: q.CleanedTextZhTw,
			CleanedTextZhCn: q.CleanedTextZhCn,
		})
	}
	if len(missing) == 0 {
		return 0, nil
	}

	for i := 0; i < len(missing); i += s.batchSize {
		end := i + s.batchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[i:end]
		if err := s.db.Clauses(quoteConflictTarget).Create(&batch).Error; err != nil {
			return 0, fmt.Errorf("failed to seed quotes batch %d for user %s: %w", i/s.batchSize+1, userID, err)
		}
		RecordSeedBatch(len(batch))
	}

	log.Printf("[seeder] Seeded %d quotes for user %s", len(missing), userID)
	return len(missing), nil
}
