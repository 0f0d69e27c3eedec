package controller

import (
	"fmt"

	"github.com/idilsaglam/listkeeper/internal/model"
)

// ValidationError reports text shorter than model.MinTextLen after trimming.
type ValidationError struct {
	Min int
	Got int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("at least %d characters required (got %d)", e.Min, e.Got)
}

func errTooShort(text string) error {
	return &ValidationError{Min: model.MinTextLen, Got: model.TextLen(text)}
}

// IndexError reports a position outside the current list.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: have %d, got %d", e.Len, e.Index)
}
