package term

import (
	"fmt"
	"time"

	"github.com/cbodonnell/blockfall/pkg/log"
	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/cbodonnell/blockfall/pkg/sound"
	"github.com/gopxl/beep/speaker"
)

// CuePlayer turns session cues into sound.
type CuePlayer interface {
	Play(cues []session.Cue)
}

// Speaker plays cues on the default audio device through the beep speaker.
type Speaker struct{}

// NewSpeaker initializes the beep speaker. It can only be called once per process.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %v", err)
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(cues []session.Cue) {
	for _, c := range cues {
		e, ok := sound.ForCue(c)
		if !ok {
			continue
		}
		streamer, err := sound.Streamer(e)
		if err != nil {
			log.Warn("Failed to create %s streamer: %v", e, err)
			continue
		}
		speaker.Play(streamer)
	}
}

func (s *Speaker) Close() {
	speaker.Close()
}
