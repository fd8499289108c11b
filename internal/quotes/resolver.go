package quotes

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoQuotesAvailable means the scope's pool is empty even after seeding.
// Only possible when the system master set itself is empty.
var ErrNoQuotesAvailable = errors.New("no quotes available")

// Today returns the current UTC calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Resolver assigns one quote per calendar day per scope. A scope is either
// model.ScopeGlobal (backed by system-owned quotes) or a user id (backed by
// that user's library, seeded on demand).
type Resolver struct {
	db     *gorm.DB
	seeder *Seeder

	mu  sync.Mutex
	rng *rand.Rand
}

func NewResolver(db *gorm.DB, seeder *Seeder) *Resolver {
	return &Resolver{
		db:     db,
		seeder: seeder,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func ownerForScope(scope string) string {
	if scope == model.ScopeGlobal {
		return model.SystemOwnerID
	}
	return scope
}

// TodaysQuote resolves the quote for the current UTC date in the given scope.
// Repeated calls on the same day return the same quote.
func (r *Resolver) TodaysQuote(scope string) (*model.Quote, error) {
	return r.QuoteForDay(scope, Today())
}

// QuoteForDay resolves the quote assigned to a calendar day, creating the
// assignment if the day is still unassigned:
//
//  1. an existing assignment whose quote is still visible to the scope wins
//  2. otherwise the scope's pool is seeded and loaded
//  3. candidates are the pool minus quotes used on past days; once every
//     quote has been shown the full pool is used again (cycle restart)
//  4. the pick is persisted with a do-nothing upsert on (scope, date) and
//     re-read, so concurrent first calls converge on one winner
func (r *Resolver) QuoteForDay(scope, day string) (*model.Quote, error) {
	owner := ownerForScope(scope)

	if quote, err := r.assignedQuote(scope, day, owner); err != nil {
		RecordResolution(scope, outcomeError)
		return nil, err
	} else if quote != nil {
		RecordResolution(scope, outcomeExisting)
		return quote, nil
	}

	// Unassigned (or the assigned quote vanished): make sure the pool exists.
	if scope == model.ScopeGlobal {
		if err := EnsureSystemQuotesSeeded(r.db); err != nil {
			log.Printf("[resolver] System seeding failed: %v", err)
		}
	} else {
		if err := EnsureSystemQuotesSeeded(r.db); err != nil {
			log.Printf("[resolver] System seeding failed: %v", err)
		}
		if _, err := r.seeder.EnsureUserQuotesSeeded(scope); err != nil {
			log.Printf("[resolver] User seeding failed for %s: %v", scope, err)
		}
	}

	var pool []model.Quote
	if err := r.db.Where("owner_id = ?", owner).Find(&pool).Error; err != nil {
		RecordResolution(scope, outcomeError)
		return nil, fmt.Errorf("failed to load quote pool: %w", err)
	}
	if len(pool) == 0 {
		RecordResolution(scope, outcomeEmpty)
		return nil, ErrNoQuotesAvailable
	}

	var usedIDs []string
	if err := r.db.Model(&model.DailyQuote{}).Where("scope = ?", scope).Pluck("quote_id", &usedIDs).Error; err != nil {
		RecordResolution(scope, outcomeError)
		return nil, fmt.Errorf("failed to load used quote ids: %w", err)
	}
	used := make(map[string]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}

	candidates := pool[:0:0]
	for _, q := range pool {
		if _, ok := used[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		// Every quote has been shown at least once; the cycle restarts.
		candidates = pool
	}

	selected := candidates[r.pick(len(candidates))]

	if quote, persisted := r.persistAssignment(scope, day, owner, &selected); persisted {
		RecordResolution(scope, outcomePicked)
		return quote, nil
	}

	// Bookkeeping failed twice; showing a quote beats recording one.
	log.Printf("[resolver] Could not persist assignment for (%s, %s), returning unrecorded pick", scope, day)
	RecordResolution(scope, outcomePicked)
	return &selected, nil
}

// assignedQuote returns the already-assigned quote for (scope, day) if it
// exists and still belongs to the scope's owner, nil otherwise.
func (r *Resolver) assignedQuote(scope, day, owner string) (*model.Quote, error) {
	var assignment model.DailyQuote
	err := r.db.Where("scope = ? AND date = ?", scope, day).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up daily assignment: %w", err)
	}

	var quote model.Quote
	err = r.db.Where("id = ? AND owner_id = ?", assignment.QuoteID, owner).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Assigned quote was deleted or changed owner; pick a fresh one.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned quote: %w", err)
	}
	return &quote, nil
}

// persistAssignment upserts the (scope, day) assignment and re-reads it, so
// that if a concurrent resolution won the insert race the caller returns the
// winner's quote. The upsert is retried once; reports whether a durable
// assignment exists.
func (r *Resolver) persistAssignment(scope, day, owner string, selected *model.Quote) (*model.Quote, bool) {
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "date"}},
		DoNothing: true,
	}

	for attempt := 0; attempt < 2; attempt++ {
		assignment := model.DailyQuote{Scope: scope, Date: day, QuoteID: selected.ID}
		if err := r.db.Clauses(upsert).Create(&assignment).Error; err != nil {
			log.Printf("[resolver] Failed to save assignment for (%s, %s): %v", scope, day, err)
			continue
		}

		if quote, err := r.assignedQuote(scope, day, owner); err == nil && quote != nil {
			return quote, true
		}
		// Row exists but its quote is unreadable; our own pick is still valid.
		return selected, true
	}
	return selected, false
}

// pick returns a uniform index in [0, n). Guarded because a *rand.Rand is
// not safe for concurrent use across request goroutines.
func (r *Resolver) pick(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
