package leaderboard

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "single char", input: "A"},
		{name: "max length", input: "ABCDEFGHIJ"},
		{name: "digits", input: "abc123"},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxNameLength+1), wantErr: true},
		{name: "space", input: "ab cd", wantErr: true},
		{name: "punctuation", input: "abc!", wantErr: true},
		{name: "non ascii", input: "Zoë", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsInvalidArgument(err))
		})
	}
}

func TestValidateScoreAndLimit(t *testing.T) {
	assert.NoError(t, ValidateScore(0))
	assert.True(t, IsInvalidArgument(ValidateScore(-1)))
	assert.NoError(t, ValidateScore(MaxScore))
	tooHigh := MaxScore
	tooHigh++
	assert.True(t, IsInvalidArgument(ValidateScore(tooHigh)))

	assert.NoError(t, ValidateLimit(1))
	assert.NoError(t, ValidateLimit(MaxLimit))
	assert.True(t, IsInvalidArgument(ValidateLimit(0)))
	assert.True(t, IsInvalidArgument(ValidateLimit(-5)))
	assert.True(t, IsInvalidArgument(ValidateLimit(MaxLimit+1)))
}

func TestIsInvalidArgument(t *testing.T) {
	err := fmt.Errorf("saving: %w", &InvalidArgumentError{Field: "name", Message: "bad"})
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, "saving: invalid name: bad", err.Error())
	assert.False(t, IsInvalidArgument(errors.New("boom")))
	assert.False(t, IsInvalidArgument(nil))
}
