package ui

import (
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
)

// ActionableError is an error whose message can be shown to the player as is.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}

// Describe turns err into a short message for the player.
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if actionable, ok := err.(*ActionableError); ok {
		return actionable.Message
	}
	if leaderboard.IsInvalidArgument(err) {
		return err.Error()
	}
	return fallback
}
