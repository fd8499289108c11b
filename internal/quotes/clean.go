package quotes

import (
	"regexp"
	"strings"
)

// MaxCleanedLength caps cleaned text; longer input is truncated with an ellipsis.
const MaxCleanedLength = 280

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	sentenceBreakRe = regexp.MustCompile(`([。！？!?.\n])\s+`)
	multiNewlineRe  = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes quote text for display: trims, collapses runs of
// whitespace, restores line breaks after sentence punctuation, allows at
// most two consecutive newlines and truncates to MaxCleanedLength runes.
func CleanText(original string) string {
	if original == "" {
		return ""
	}

	normalized := strings.TrimSpace(original)
	collapsed := whitespaceRe.ReplaceAllString(normalized, " ")
	withBreaks := sentenceBreakRe.ReplaceAllString(collapsed, "$1\n")
	withBreaks = multiNewlineRe.ReplaceAllString(withBreaks, "\n\n")

	runes := []rune(withBreaks)
	if len(runes) > MaxCleanedLength {
		return strings.TrimSpace(string(runes[:MaxCleanedLength])) + "…"
	}
	return withBreaks
}
