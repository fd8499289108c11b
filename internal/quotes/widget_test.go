package quotes

import (
	"testing"

	"github.com/quietday/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, LangZhTw, NormalizeLanguage(""))
	assert.Equal(t, LangZhTw, NormalizeLanguage("fr"))
	assert.Equal(t, LangZhTw, NormalizeLanguage(LangZhTw))
	assert.Equal(t, LangZhCn, NormalizeLanguage(LangZhCn))
	assert.Equal(t, LangEn, NormalizeLanguage(LangEn))
}

func TestQuoteForDateDeterministic(t *testing.T) {
	pool := []model.Quote{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}

	first := QuoteForDate(pool, "2026-03-14")
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := QuoteForDate(pool, "2026-03-14")
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}
}

func TestQuoteForDateStaysInBounds(t *testing.T) {
	pool := []model.Quote{{ID: "only"}}
	for _, date := range []string{"2026-01-01", "2026-06-15", "2026-12-31"} {
		selected := QuoteForDate(pool, date)
		require.NotNil(t, selected)
		assert.Equal(t, "only", selected.ID)
	}
}

func TestQuoteForDateEmptyPool(t *testing.T) {
	assert.Nil(t, QuoteForDate(nil, "2026-03-14"))
}

func TestDisplayTextNoFallback(t *testing.T) {
	q := model.Quote{
		CleanedTextZhTw: "繁體",
		CleanedTextZhCn: "简体",
	}

	assert.Equal(t, "繁體", DisplayText(&q, LangZhTw))
	assert.Equal(t, "简体", DisplayText(&q, LangZhCn))
	// Missing translation renders empty rather than borrowing another language.
	assert.Equal(t, "", DisplayText(&q, LangEn))
}

func TestDefaultWidgetQuoteHasText(t *testing.T) {
	assert.NotEmpty(t, DisplayText(&DefaultWidgetQuote, LangZhTw))
}
