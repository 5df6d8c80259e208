package leaderboard

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// InvalidArgumentError is returned when a caller passes a name, score or limit
// that the leaderboard does not accept.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func IsInvalidArgument(err error) bool {
	var invalid *InvalidArgumentError
	return errors.As(err, &invalid)
}

// ValidateName checks that name has 1 to MaxNameLength ASCII letters or digits.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxNameLength {
		return &InvalidArgumentError{
			Field:   "name",
			Message: fmt.Sprintf("must be between 1 and %d characters", MaxNameLength),
		}
	}
	for _, r := range name {
		if !IsNameRune(r) {
			return &InvalidArgumentError{Field: "name", Message: "must only contain letters and digits"}
		}
	}
	return nil
}

// IsNameRune reports whether r may appear in a player name.
func IsNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func ValidateScore(score int) error {
	if score < 0 {
		return &InvalidArgumentError{Field: "score", Message: "must not be negative"}
	}
	if score > MaxScore {
		return &InvalidArgumentError{Field: "score", Message: fmt.Sprintf("must not exceed %d", MaxScore)}
	}
	return nil
}

func ValidateLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return &InvalidArgumentError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxLimit),
		}
	}
	return nil
}

func validateEntry(name string, score int) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateScore(score)
}
