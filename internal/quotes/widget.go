package quotes

import (
	"strings"

	"github.com/quietday/api/internal/model"
)

// Widget languages
const (
	LangZhTw = "zh-tw"
	LangZhCn = "zh-cn"
	LangEn   = "en"
)

// NormalizeLanguage maps unknown language params to the default zh-tw.
func NormalizeLanguage(param string) string {
	switch param {
	case LangZhCn, LangEn, LangZhTw:
		return param
	default:
		return LangZhTw
	}
}

// DefaultWidgetQuote is served when no pool is available (anonymous request
// or an account with no quotes at all).
var DefaultWidgetQuote = model.Quote{
	ID:              "default",
	OwnerID:         model.SystemOwnerID,
	OriginalText:    "「成功不是終點，失敗也不是致命的，繼續前進的勇氣才是最重要的。」",
	CleanedTextZhTw: "成功不是終點，失敗也不是致命的，繼續前進的勇氣才是最重要的。",
}

// QuoteForDate deterministically picks a quote for a date string. Same hash
// as the original widget: h = (h<<5) - h + c over the date, abs, mod len.
// Distinct from the resolver on purpose; the widget needs no persistence.
func QuoteForDate(pool []model.Quote, date string) *model.Quote {
	if len(pool) == 0 {
		return nil
	}
	var hash int32
	for _, c := range date {
		hash = (hash << 5) - hash + int32(c)
	}
	if hash < 0 {
		hash = -hash
	}
	return &pool[int(hash)%len(pool)]
}

// DisplayText returns the cleaned text for a language. No cross-language
// fallback: a missing translation renders as empty.
func DisplayText(q *model.Quote, language string) string {
	switch language {
	case LangZhCn:
		return strings.TrimSpace(q.CleanedTextZhCn)
	case LangEn:
		return strings.TrimSpace(q.CleanedTextEn)
	default:
		return strings.TrimSpace(q.CleanedTextZhTw)
	}
}
