package quotes

import (
	"math/rand"
	"testing"

	"github.com/quietday/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// userResolver builds a resolver whose user scope already holds its own
// quotes, with a threshold low enough that seeding never tops the pool up.
func userResolver(t *testing.T, db *gorm.DB) *Resolver {
	t.Helper()
	r := NewResolver(db, NewSeeder(db, 1, 10))
	r.rng = rand.New(rand.NewSource(1))
	return r
}

func TestQuoteForDaySameDayIdempotent(t *testing.T) {
	db := testDB(t)
	userID := "aaaaaaaa-0000-0000-0000-000000000001"
	createQuotes(t, db, userID, "one", "two", "three")
	r := userResolver(t, db)

	first, err := r.QuoteForDay(userID, "2026-08-01")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := r.QuoteForDay(userID, "2026-08-01")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	}

	var count int64
	require.NoError(t, db.Model(&model.DailyQuote{}).Where("scope = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestQuoteForDayDoesNotRepeatUntilPoolExhausted(t *testing.T) {
	db := testDB(t)
	userID := "aaaaaaaa-0000-0000-0000-000000000002"
	createQuotes(t, db, userID, "one", "two", "three")
	r := userResolver(t, db)

	seen := map[string]bool{}
	days := []string{"2026-08-01", "2026-08-02", "2026-08-03"}
	for _, day := range days {
		q, err := r.QuoteForDay(userID, day)
		require.NoError(t, err)
		assert.False(t, seen[q.ID], "quote %s repeated before the pool was exhausted", q.ID)
		seen[q.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestQuoteForDayCycleRestartsAfterExhaustion(t *testing.T) {
	db := testDB(t)
	userID := "aaaaaaaa-0000-0000-0000-000000000003"
	quotes := createQuotes(t, db, userID, "one", "two", "three")
	r := userResolver(t, db)

	for _, day := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		_, err := r.QuoteForDay(userID, day)
		require.NoError(t, err)
	}

	// Day four starts a new cycle from the full pool.
	q, err := r.QuoteForDay(userID, "2026-08-04")
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, quote := range quotes {
		ids[quote.ID] = true
	}
	assert.True(t, ids[q.ID])

	// And the new assignment sticks.
	again, err := r.QuoteForDay(userID, "2026-08-04")
	require.NoError(t, err)
	assert.Equal(t, q.ID, again.ID)
}

func TestQuoteForDayGlobalScopeUsesSystemPool(t *testing.T) {
	db := testDB(t)
	r := userResolver(t, db)

	// No quotes exist yet; the resolver seeds the built-in master set.
	q, err := r.QuoteForDay(model.ScopeGlobal, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, model.SystemOwnerID, q.OwnerID)
}

func TestQuoteForDayConcurrentWinnerWins(t *testing.T) {
	db := testDB(t)
	userID := "aaaaaaaa-0000-0000-0000-000000000004"
	quotes := createQuotes(t, db, userID, "one", "two", "three")
	r := userResolver(t, db)

	// Another resolution already recorded an assignment for the day.
	require.NoError(t, db.Create(&model.DailyQuote{
		Scope:   userID,
		Date:    "2026-08-01",
		QuoteID: quotes[2].ID,
	}).Error)

	q, err := r.QuoteForDay(userID, "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, quotes[2].ID, q.ID)
}

func TestQuoteForDayStaleAssignmentRepicks(t *testing.T) {
	db := testDB(t)
	userID := "aaaaaaaa-0000-0000-0000-000000000005"
	quotes := createQuotes(t, db, userID, "one", "two", "three")
	r := userResolver(t, db)

	// Assignment points at a quote that was since deleted.
	require.NoError(t, db.Create(&model.DailyQuote{
		Scope:   userID,
		Date:    "2026-08-01",
		QuoteID: "deadbeef-0000-0000-0000-000000000000",
	}).Error)

	q, err := r.QuoteForDay(userID, "2026-08-01")
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, quote := range quotes {
		ids[quote.ID] = true
	}
	assert.True(t, ids[q.ID])
}

func TestQuoteForDayEmptyPool(t *testing.T) {
	db := testDB(t)
	r := userResolver(t, db)

	// With no master set there is nothing to seed from anywhere.
	orig := DefaultSystemQuotes
	DefaultSystemQuotes = nil
	defer func() { DefaultSystemQuotes = orig }()

	_, err := r.QuoteForDay(model.ScopeGlobal, "2026-08-01")
	assert.ErrorIs(t, err, ErrNoQuotesAvailable)

	_, err = r.QuoteForDay("aaaaaaaa-0000-0000-0000-000000000006", "2026-08-01")
	assert.ErrorIs(t, err, ErrNoQuotesAvailable)
}

func TestTodayFormat(t *testing.T) {
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, Today())
}
