package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/client/audio"
	"github.com/cbodonnell/blockfall/client/input"
	"github.com/cbodonnell/blockfall/client/objects"
	"github.com/cbodonnell/blockfall/client/scenes"
	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// session holds the game state; the game only renders it and feeds it input.
	session *session.Session
	// audio plays the session's cues. It is nil when audio could not be started.
	audio *audio.Player
	// mode is the session mode the current scene was built for.
	mode session.Mode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug   bool
	Session *session.Session
	Audio   *audio.Player
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}

	g := &Game{
		debug:   opts.Debug,
		session: opts.Session,
		audio:   opts.Audio,
	}

	if err := g.loadScene(g.session.Mode()); err != nil {
		return nil, fmt.Errorf("failed to load %s scene: %v", g.session.Mode(), err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadScene(mode session.Mode) error {
	var scene scenes.Scene
	var err error
	switch mode {
	case session.ModeMenu:
		scene, err = scenes.NewMenuScene(g.session)
	case session.ModePlaying:
		scene, err = scenes.NewGameScene(g.session)
	case session.ModeGameOver:
		scene, err = scenes.NewGameOverScene(g.session)
	default:
		return fmt.Errorf("unknown mode %s", mode)
	}
	if err != nil {
		return fmt.Errorf("failed to create scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set scene: %v", err)
	}
	g.mode = mode
	log.Debug("Loaded %s scene", mode)
	return nil
}

func (g *Game) Update() error {
	ctx := context.Background()

	g.handleToggles()

	for _, action := range input.Actions(g.session.Mode(), g.session.NameEntryActive()) {
		g.session.Handle(ctx, action)
	}
	g.session.Advance(ctx, time.Second/time.Duration(ebiten.TPS()))

	if g.session.QuitRequested() {
		return ebiten.Termination
	}

	if mode := g.session.Mode(); mode != g.mode {
		if err := g.loadScene(mode); err != nil {
			return fmt.Errorf("failed to load %s scene: %v", mode, err)
		}
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	// the game over scene can save and restart from its own widgets
	if mode := g.session.Mode(); mode != g.mode {
		if err := g.loadScene(mode); err != nil {
			return fmt.Errorf("failed to load %s scene: %v", mode, err)
		}
	}

	cues := g.session.Cues()
	if g.audio != nil {
		g.audio.Play(cues)
	}

	return nil
}

func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	// M would otherwise be typed into the name field
	if g.audio != nil && !g.session.NameEntryActive() && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.SetMuted(!g.audio.Muted())
		log.Debug("Audio muted: %t", g.audio.Muted())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.session.Mode()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Level: %d (%s)", g.session.Level().Number, g.session.Level().Interval))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Session: %s", g.session.ID()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return objects.ScreenWidth, objects.ScreenHeight
}
