package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"gorm.io/gorm"
)

// BackfillScheduler periodically walks all users and tops up any library
// that has fallen below the seed threshold. New signups are seeded inline
// at registration time; this catches users created before a master-library
// expansion, or rows left short by a partial seed.
type BackfillScheduler struct {
	db       *gorm.DB
	seeder   *quotes.Seeder
	interval time.Duration
	running  bool
	lastRun  time.Time
	lastSeen int
	mu       sync.Mutex
	stopChan chan struct{}
}

type Config struct {
	Interval time.Duration
}

func NewBackfillScheduler(db *gorm.DB, seeder *quotes.Seeder, cfg Config) *BackfillScheduler {
	if cfg.Interval == 0 {
		cfg.Interval = time.Hour
	}

	return &BackfillScheduler{
		db:       db,
		seeder:   seeder,
		interval: cfg.Interval,
		stopChan: make(chan struct{}),
	}
}

func (s *BackfillScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	log.Printf("[Scheduler] Starting backfill with interval %v", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] Context cancelled, stopping")
			return
		case <-s.stopChan:
			log.Println("[Scheduler] Stop signal received")
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}

func (s *BackfillScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopChan)
		s.running = false
		log.Println("[Scheduler] Stopped")
	}
}

// RunOnce scans every user and seeds those below the threshold. Safe to
// call from the admin endpoint while the ticker loop is also running; the
// seeder's inserts are conflict-skipping so overlap is harmless.
func (s *BackfillScheduler) RunOnce() {
	var userIDs []string
	if err := s.db.Model(&model.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Printf("[Scheduler] Error listing users: %v", err)
		return
	}

	seeded := 0
	for _, userID := range userIDs {
		inserted, err := s.seeder.EnsureUserQuotesSeeded(userID)
		if err != nil {
			log.Printf("[Scheduler] Error seeding user %s: %v", userID, err)
			continue
		}
		if inserted > 0 {
			seeded++
			log.Printf("[Scheduler] Backfilled %d quotes for user %s", inserted, userID)
		}
	}

	s.mu.Lock()
	s.lastRun = time.Now().UTC()
	s.lastSeen = len(userIDs)
	s.mu.Unlock()

	log.Printf("[Scheduler] Backfill pass complete: %d/%d users needed seeding", seeded, len(userIDs))
}

// GetStatus returns current scheduler status
func (s *BackfillScheduler) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]interface{}{
		"running":  s.running,
		"interval": s.interval.String(),
		"users":    s.lastSeen,
	}
	if !s.lastRun.IsZero() {
		status["lastRun"] = s.lastRun.Format(time.RFC3339)
	}
	return status
}
