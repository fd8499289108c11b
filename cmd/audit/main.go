package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/quietday/api/internal/config"
	"github.com/quietday/api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Issue struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Details string `json:"details"`
}

func main() {
	outputFile := flag.String("output", "audit_results.json", "Output file for results")
	flag.Parse()

	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	startTime := time.Now()
	var issues []Issue

	issues = append(issues, auditDailyAssignments(db)...)
	issues = append(issues, auditDuplicateQuotes(db)...)
	issues = append(issues, auditOrphanedRows(db)...)
	issues = append(issues, auditLibrarySizes(db, cfg.SeedThreshold)...)

	elapsed := time.Since(startTime)
	fmt.Printf("\n=== Audit Complete ===\n")
	fmt.Printf("Issues found: %d\n", len(issues))
	fmt.Printf("Time elapsed: %v\n", elapsed)

	// Group issues by type
	issuesByType := make(map[string][]Issue)
	for _, issue := range issues {
		issuesByType[issue.Type] = append(issuesByType[issue.Type], issue)
	}

	fmt.Printf("\n=== Issues by Type ===\n")
	for typ, typeIssues := range issuesByType {
		fmt.Printf("%s: %d\n", typ, len(typeIssues))
	}

	// Save results
	output := map[string]interface{}{
		"summary": map[string]interface{}{
			"issues":  len(issues),
			"elapsed": elapsed.String(),
		},
		"issuesByType": issuesByType,
		"issues":       issues,
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile(*outputFile, jsonData, 0644); err != nil {
		log.Printf("Failed to write output file: %v", err)
	} else {
		fmt.Printf("\nResults saved to %s\n", *outputFile)
	}
}

// auditDailyAssignments flags assignments whose quote is gone or belongs to
// a different owner than the scope implies.
func auditDailyAssignments(db *gorm.DB) []Issue {
	var issues []Issue

	var assignments []model.DailyQuote
	if err := db.Find(&assignments).Error; err != nil {
		log.Printf("Failed to load daily assignments: %v", err)
		return nil
	}

	for _, a := range assignments {
		owner := a.Scope
		if a.Scope == model.ScopeGlobal {
			owner = model.SystemOwnerID
		}

		var quote model.Quote
		err := db.Where("id = ?", a.QuoteID).First(&quote).Error
		if err == gorm.ErrRecordNotFound {
			issues = append(issues, Issue{
				Type:    "DANGLING_ASSIGNMENT",
				ID:      a.ID,
				Details: fmt.Sprintf("Assignment (%s, %s) points at missing quote %s", a.Scope, a.Date, a.QuoteID),
			})
			continue
		}
		if err != nil {
			log.Printf("Failed to load quote %s: %v", a.QuoteID, err)
			continue
		}

		if quote.OwnerID != owner {
			issues = append(issues, Issue{
				Type:    "SCOPE_MISMATCH",
				ID:      a.ID,
				Details: fmt.Sprintf("Assignment (%s, %s) points at quote owned by %s", a.Scope, a.Date, quote.OwnerID),
			})
		}

		if _, err := time.Parse("2006-01-02", a.Date); err != nil {
			issues = append(issues, Issue{
				Type:    "BAD_DATE",
				ID:      a.ID,
				Details: fmt.Sprintf("Assignment date %q is not YYYY-MM-DD", a.Date),
			})
		}
	}

	return issues
}

// auditDuplicateQuotes flags libraries holding the same original text twice.
// The unique index should make this impossible; rows predating it can still
// violate it.
func auditDuplicateQuotes(db *gorm.DB) []Issue {
	var issues []Issue

	type dup struct {
		OwnerID      string
		OriginalText string
		Count        int64
	}
	var dups []dup
	db.Model(&model.Quote{}).
		Select("owner_id, original_text, count(*) as count").
		Group("owner_id, original_text").
		Having("count(*) > 1").
		Scan(&dups)

	for _, d := range dups {
		issues = append(issues, Issue{
			Type:    "DUPLICATE_QUOTE",
			ID:      d.OwnerID,
			Details: fmt.Sprintf("Owner %s holds %d copies of %q", d.OwnerID, d.Count, d.OriginalText),
		})
	}

	return issues
}

// auditOrphanedRows flags favorites and journals whose quote no longer exists.
func auditOrphanedRows(db *gorm.DB) []Issue {
	var issues []Issue

	var favoriteIDs []string
	db.Model(&model.Favorite{}).
		Where("quote_id NOT IN (?)", db.Model(&model.Quote{}).Select("id")).
		Pluck("id", &favoriteIDs)
	for _, id := range favoriteIDs {
		issues = append(issues, Issue{
			Type:    "ORPHANED_FAVORITE",
			ID:      id,
			Details: "Favorite references a missing quote",
		})
	}

	var journalIDs []string
	db.Model(&model.JournalEntry{}).
		Where("quote_id NOT IN (?)", db.Model(&model.Quote{}).Select("id")).
		Pluck("id", &journalIDs)
	for _, id := range journalIDs {
		issues = append(issues, Issue{
			Type:    "ORPHANED_JOURNAL",
			ID:      id,
			Details: "Journal entry references a missing quote",
		})
	}

	return issues
}

// auditLibrarySizes flags users whose library sits below the seed threshold.
// Not corruption, but a sign the backfill scheduler is not keeping up.
func auditLibrarySizes(db *gorm.DB, threshold int) []Issue {
	var issues []Issue

	var userIDs []string
	if err := db.Model(&model.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Printf("Failed to load users: %v", err)
		return nil
	}

	for _, userID := range userIDs {
		var count int64
		db.Model(&model.Quote{}).Where("owner_id = ?", userID).Count(&count)
		if count < int64(threshold) {
			issues = append(issues, Issue{
				Type:    "UNDERSEEDED_LIBRARY",
				ID:      userID,
				Details: fmt.Sprintf("Library holds %d quotes, threshold is %d", count, threshold),
			})
		}
	}

	return issues
}
