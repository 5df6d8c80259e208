package scenes

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/palette"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/google/uuid"
)

const (
	panelX = 320
	panelW = 170
)

type GameScene struct {
	*BaseScene

	session   *session.Session
	lastScore int
	lastLines int
}

var _ Scene = &GameScene{}

func NewGameScene(sess *session.Session) (Scene, error) {
	engine := sess.Engine()
	root := objects.NewBaseObject("game-root", nil)

	children := []objects.GameObject{
		objects.NewBackgroundObject("game-background", func() color.Color {
			return palette.ThemeColor(sess.Level().Theme)
		}),
		objects.NewBoardObject("game-board", objects.NewBoardObjectOptions{
			Engine: engine,
			X:      objects.BoardX,
			Y:      objects.BoardY,
		}),
		objects.NewPanelObject("game-score", objects.NewPanelObjectOptions{
			Title: "Score",
			Value: func() string { return strconv.Itoa(engine.Score()) },
			X:     panelX, Y: 55, W: panelW, H: 60,
		}),
		objects.NewPanelObject("game-next", objects.NewPanelObjectOptions{
			Title: "Next",
			X:     panelX, Y: 215, W: panelW, H: 180,
		}),
		objects.NewPreviewObject("game-next-piece", engine, panelX, 215, panelW, 180),
		objects.NewPanelObject("game-level", objects.NewPanelObjectOptions{
			Title: "Level",
			Value: func() string { return strconv.Itoa(sess.Level().Number) },
			X:     panelX, Y: 445, W: panelW, H: 50,
		}),
		objects.NewPanelObject("game-lines", objects.NewPanelObjectOptions{
			Title: "Lines",
			Value: func() string { return strconv.Itoa(engine.Lines()) },
			X:     panelX, Y: 550, W: panelW, H: 50,
		}),
	}
	for _, child := range children {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return nil, fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	return &GameScene{
		BaseScene: NewBaseScene(root),
		session:   sess,
		lastScore: engine.Score(),
		lastLines: engine.Lines(),
	}, nil
}

func (g *GameScene) Update() error {
	engine := g.session.Engine()
	if lines := engine.Lines(); lines > g.lastLines {
		if err := g.addPointsEffect(engine.Score() - g.lastScore); err != nil {
			log.Warn("Failed to add points effect: %v", err)
		}
		g.lastLines = lines
	}
	g.lastScore = engine.Score()

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	return nil
}

func (g *GameScene) addPointsEffect(points int) error {
	id := fmt.Sprintf("points-%s", uuid.NewString())
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("+%d", points),
		X:      objects.BoardX + 5*objects.CellSize,
		Y:      objects.BoardY + 10*objects.CellSize,
		Color:  palette.Yellow,
		TTL:    800,
		ZIndex: 100,
	})
	return g.GetRoot().AddChild(id, effect)
}
