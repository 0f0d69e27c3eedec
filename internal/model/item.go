package model

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MinTextLen is the minimum length, in runes, of an item's trimmed text.
const MinTextLen = 5

// Item is the domain model for a list entry.
// JSON keys match the localStorage "interactiveList" payload.
type Item struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Decorated bool   `json:"hasIcon"`
}

// entry is the validated shape of user input.
type entry struct {
	Text string `validate:"min=5"`
}

var validate = validator.New()

// NormalizeText trims raw input and reports whether the result is long enough
// to be stored. It returns the trimmed text either way.
func NormalizeText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, validate.Struct(entry{Text: text}) == nil
}

// TextLen is the length used for validation: runes, not bytes.
func TextLen(s string) int { return utf8.RuneCountInString(s) }
