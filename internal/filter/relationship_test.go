package filter

import (
	"testing"

	"github.com/quietday/api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRelationshipQuotesKeepsKeywordMatches(t *testing.T) {
	pool := []model.Quote{
		{ID: "a", CleanedTextZhTw: "你值得被溫柔對待。"},
		{ID: "b", CleanedTextEn: "You deserve respect in every relationship."},
		{ID: "c", CleanedTextZhTw: "今天天氣很好。"},
	}

	out := RelationshipQuotes(pool)

	ids := make([]string, 0, len(out))
	for _, q := range out {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestRelationshipQuotesDropsExcludedThemes(t *testing.T) {
	pool := []model.Quote{
		// Matches a keyword but also an excluded one.
		{ID: "a", CleanedTextZhTw: "愛就是不斷忍耐與付出。"},
		{ID: "b", CleanedTextEn: "Love means endless sacrifice."},
	}

	assert.Empty(t, RelationshipQuotes(pool))
}

func TestRelationshipQuotesMatchesAnyLanguageField(t *testing.T) {
	pool := []model.Quote{
		{ID: "a", OriginalText: "Set a clear boundary and keep it."},
	}

	out := RelationshipQuotes(pool)
	assert.Len(t, out, 1)
}

func TestRelationshipQuotesCaseInsensitive(t *testing.T) {
	pool := []model.Quote{
		{ID: "a", CleanedTextEn: "RESPECT is earned daily."},
	}

	assert.Len(t, RelationshipQuotes(pool), 1)
}

func TestRelationshipQuotesEmptyPool(t *testing.T) {
	assert.Empty(t, RelationshipQuotes(nil))
}
