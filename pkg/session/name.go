package session

import (
	"strings"

	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	petname "github.com/dustinkirkland/golang-petname"
)

// SuggestName returns a random name that the leaderboard accepts.
func SuggestName() string {
	var b strings.Builder
	for _, r := range petname.Generate(2, "") {
		if b.Len() == leaderboard.MaxNameLength {
			break
		}
		if leaderboard.IsNameRune(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Player"
	}
	return b.String()
}
