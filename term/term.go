// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/gdamore/tcell/v2"
)

const DefaultFrameRate = 60

type App struct {
	screen    tcell.Screen
	session   *session.Session
	audio     CuePlayer
	frameRate int
}

type NewAppOptions struct {
	// Screen must already be initialized. The caller is responsible for calling Fini.
	Screen  tcell.Screen
	Session *session.Session
	// Audio may be nil to run silently.
	Audio     CuePlayer
	FrameRate int
}

func NewApp(opts NewAppOptions) (*App, error) {
	if opts.Screen == nil {
		return nil, fmt.Errorf("screen is required")
	}
	if opts.Session == nil {
		return nil, fmt.Errorf("session is required")
	}
	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &App{
		screen:    opts.Screen,
		session:   opts.Session,
		audio:     opts.Audio,
		frameRate: frameRate,
	}, nil
}

// Run processes input and advances the session until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.screen.HideCursor()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(a.frameRate))
	defer tick.Stop()

	last := time.Now()
	render(a.screen, a.session)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			a.handleEvent(ctx, ev)
		case now := <-tick.C:
			a.session.Advance(ctx, now.Sub(last))
			last = now
		}

		cues := a.session.Cues()
		if a.audio != nil {
			a.audio.Play(cues)
		}
		if a.session.QuitRequested() {
			log.Debug("Quit requested")
			return nil
		}
		render(a.screen, a.session)
	}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		handleKey(ctx, a.session, e)
	}
}
