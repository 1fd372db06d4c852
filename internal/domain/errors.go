package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStoryNotFound indicates the requested story id is not in the catalog.
	ErrStoryNotFound = errors.New("story not found")
	// ErrChapterNotFound indicates a chapter reference points nowhere.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrInvalidChoice indicates a choice index outside the current chapter's options.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrQuizFinished is returned when answering a quiz run that already ended.
	ErrQuizFinished = errors.New("quiz already finished")
	// ErrContributionNotFound indicates an unknown contribution id.
	ErrContributionNotFound = errors.New("contribution not found")
	// ErrInvalidStatus indicates a status outside the moderation enum.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
