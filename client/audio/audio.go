package audio

import (
	"fmt"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/cbodonnell/blockfall/pkg/sound"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays the sound effect of each session cue through ebiten's audio context.
type Player struct {
	context *ebitenaudio.Context
	players map[sound.Effect]*ebitenaudio.Player
	muted   bool
}

type NewPlayerOptions struct {
	Bank  *sound.Bank
	Muted bool
}

// NewPlayer renders every effect up front so that playing one never blocks a frame.
func NewPlayer(opts NewPlayerOptions) (*Player, error) {
	bank := opts.Bank
	if bank == nil {
		bank = sound.NewBank()
	}

	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(int(sound.SampleRate))
	}

	p := &Player{
		context: ctx,
		players: make(map[sound.Effect]*ebitenaudio.Player, len(sound.Effects)),
		muted:   opts.Muted,
	}
	for _, e := range sound.Effects {
		pcm, err := bank.Get(e)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s effect: %v", e, err)
		}
		p.players[e] = ctx.NewPlayerFromBytes(pcm)
	}
	return p, nil
}

// Play starts the effect for every cue, restarting effects that are still playing.
func (p *Player) Play(cues []session.Cue) {
	if p.muted {
		return
	}
	for _, c := range cues {
		e, ok := sound.ForCue(c)
		if !ok {
			continue
		}
		player := p.players[e]
		if err := player.Rewind(); err != nil {
			log.Warn("Failed to rewind %s effect: %v", e, err)
			continue
		}
		player.Play()
	}
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
}

func (p *Player) Muted() bool {
	return p.muted
}

func (p *Player) Close() error {
	for e, player := range p.players {
		if err := player.Close(); err != nil {
			return fmt.Errorf("failed to close %s player: %v", e, err)
		}
	}
	return nil
}
