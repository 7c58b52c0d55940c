package dashboard

import (
	"strconv"
	"unicode/utf8"
)

const (
	MAX_CHARS  = 280
	WARN_CHARS = 240
)

// Examples feed the picker in the sidebar. Picking one replaces the input.
var Examples = []string{
	"I absolutely love this product, it's amazing!",
	"This movie was a complete waste of time...",
	"Very professional customer service 👍",
	"I will never recommend this place 😡",
}

// CharCount counts code points, not bytes, so emoji count once.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

func TextValid(count int) bool {
	return count > 0 && count <= MAX_CHARS
}

// CounterColor picks the color of the "N/280" counter. Red is unreachable
// while the textarea enforces maxlength but is kept for completeness.
func CounterColor(count int) string {
	if count < WARN_CHARS {
		return "green"
	} else if count <= MAX_CHARS {
		return "orange"
	}
	return "red"
}

// ExampleByIndex resolves the picker value. The empty option and anything
// out of range select nothing.
func ExampleByIndex(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(Examples) {
		return "", false
	}
	return Examples[i], true
}
