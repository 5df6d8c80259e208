package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/leaderboard"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/session"
)

// menuScores is the number of entries that fit under the menu.
const menuScores = 5

type MenuScene struct {
	*BaseScene
}

var _ Scene = &MenuScene{}

func NewMenuScene(sess *session.Session) (Scene, error) {
	root := objects.NewBaseObject("menu-root", nil)

	children := []objects.GameObject{
		objects.NewBackgroundObject("menu-background", func() color.Color { return palette.ThemeColor(0) }),
		objects.NewStaticTextObject("menu-title", "BLOCKFALL", fonts.MPlusTitleFont, objects.ScreenWidth/2, 200, color.White),
		objects.NewStaticTextObject("menu-start", "Press ENTER to Start", fonts.TTFNormalFont, objects.ScreenWidth/2, 300, color.White),
		objects.NewStaticTextObject("menu-quit", "Press ESC to Quit", fonts.TTFNormalFont, objects.ScreenWidth/2, 350, color.White),
		objects.NewStaticTextObject("menu-scores-title", "Top Scores", fonts.TTFLargeFont, objects.ScreenWidth/2, 430, color.White),
		objects.NewScoreListObject("menu-scores", func() ([]leaderboard.Entry, error) {
			return firstEntries(sess.TopScores(), menuScores), sess.TopScoresError()
		}, 150, 470),
	}
	for _, child := range children {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return &MenuScene{
		BaseScene: NewBaseScene(root),
	}, nil
}
