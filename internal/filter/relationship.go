package filter

import (
	"strings"

	"github.com/quietday/api/internal/model"
)

// Keywords for the relationship-themed library view. Focus on self-worth,
// boundaries and being treated well; statements about pleasing, tolerance
// and waiting are excluded.
var relationshipKeywords = []string{
	// Self-worth
	"自己", "自我", "價值", "值得", "善待", "尊重",
	// Boundaries
	"邊界", "界線", "底線", "原則", "選擇",
	// Being treated well
	"溫柔", "珍惜", "愛護", "呵護",
	// Relationship context
	"關係", "愛", "情感", "陪伴", "理解", "接納",
	// English
	"self", "worth", "value", "deserve", "boundary", "boundaries",
	"treated", "gentle", "respect", "love", "relationship", "relationships",
}

var relationshipExcluded = []string{
	"取悅", "討好", "忍耐", "等待", "犧牲", "付出",
	"pleasing", "tolerance", "wait", "sacrifice", "give",
}

// RelationshipQuotes keeps quotes matching at least one relationship keyword
// in any language field and none of the excluded ones.
func RelationshipQuotes(pool []model.Quote) []model.Quote {
	out := make([]model.Quote, 0, len(pool))
	for _, q := range pool {
		text := strings.ToLower(strings.Join([]string{
			q.CleanedTextZhTw, q.CleanedTextZhCn, q.CleanedTextEn, q.OriginalText,
		}, " "))

		if !containsAny(text, relationshipKeywords) {
			continue
		}
		if containsAny(text, relationshipExcluded) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
