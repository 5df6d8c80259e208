package palette

import (
	"image/color"
	"testing"

	"github.com/cbodonnell/blockfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
)

func TestKindColor(t *testing.T) {
	seen := map[[4]uint8]tetris.Kind{}
	for _, k := range tetris.Kinds {
		c := KindColor(k)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		other, dup := seen[key]
		assert.False(t, dup, "%s and %s share a colour", k, other)
		seen[key] = k
		assert.NotEqual(t, DarkGrey, c, "kind %s", k)
	}
	assert.Equal(t, DarkGrey, KindColor(tetris.KindNone))
}

func TestThemeColor(t *testing.T) {
	tests := []struct {
		theme int
		want  color.RGBA
	}{
		{theme: -1, want: DarkBlue},
		{theme: 0, want: DarkBlue},
		{theme: 1, want: LightBlue},
		{theme: 2, want: Green},
		{theme: 3, want: Red},
		{theme: 9, want: Red},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ThemeColor(tt.theme), "theme %d", tt.theme)
	}
}
