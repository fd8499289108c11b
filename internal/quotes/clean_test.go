package quotes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextTrimsAndCollapses(t *testing.T) {
	assert.Equal(t, "hello world", CleanText("  hello   world  "))
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t  "))
}

func TestCleanTextRestoresSentenceBreaks(t *testing.T) {
	assert.Equal(t, "第一句。\n第二句。", CleanText("第一句。 第二句。"))
	assert.Equal(t, "one.\ntwo.", CleanText("one.  two."))
	assert.Equal(t, "wait!\nthen?\ndone.", CleanText("wait! then? done."))
}

func TestCleanTextCollapsesInternalNewlines(t *testing.T) {
	// Newlines in the input are whitespace like any other; breaks only come
	// back after sentence punctuation.
	assert.Equal(t, "line one line two", CleanText("line one\n\n\n\nline two"))
}

func TestCleanTextTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("字", MaxCleanedLength+50)
	cleaned := CleanText(long)

	runes := []rune(cleaned)
	assert.Equal(t, MaxCleanedLength+1, len(runes))
	assert.Equal(t, '…', runes[len(runes)-1])
}

func TestCleanTextShortInputUnchanged(t *testing.T) {
	assert.Equal(t, "短句", CleanText("短句"))
}
