package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/blockfall/pkg/session"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const SampleRate = beep.SampleRate(44100)

// Format is the PCM layout produced by Render: 16-bit signed little endian stereo.
var Format = beep.Format{
	SampleRate:  SampleRate,
	NumChannels: 2,
	Precision:   2,
}

type Effect int

const (
	EffectRotate Effect = iota + 1
	EffectLock
	EffectClear
	EffectGameOver
	EffectSaved
)

func (e Effect) String() string {
	switch e {
	case EffectRotate:
		return "rotate"
	case EffectLock:
		return "lock"
	case EffectClear:
		return "clear"
	case EffectGameOver:
		return "game over"
	case EffectSaved:
		return "saved"
	default:
		return "unknown"
	}
}

var Effects = []Effect{EffectRotate, EffectLock, EffectClear, EffectGameOver, EffectSaved}

type note struct {
	freq     float64
	duration time.Duration
}

var melodies = map[Effect][]note{
	EffectRotate: {{freq: 660, duration: 40 * time.Millisecond}},
	EffectLock:   {{freq: 196, duration: 60 * time.Millisecond}},
	EffectClear: {
		{freq: 523.25, duration: 70 * time.Millisecond},
		{freq: 659.25, duration: 70 * time.Millisecond},
		{freq: 783.99, duration: 120 * time.Millisecond},
	},
	EffectGameOver: {
		{freq: 392, duration: 160 * time.Millisecond},
		{freq: 329.63, duration: 160 * time.Millisecond},
		{freq: 261.63, duration: 320 * time.Millisecond},
	},
	EffectSaved: {
		{freq: 783.99, duration: 80 * time.Millisecond},
		{freq: 1046.5, duration: 160 * time.Millisecond},
	},
}

// volume is relative to full scale, in powers of two.
const volume = -1.5

// ForCue maps a session cue to the effect played for it.
func ForCue(c session.Cue) (Effect, bool) {
	switch c {
	case session.CueRotate:
		return EffectRotate, true
	case session.CueLock:
		return EffectLock, true
	case session.CueClear:
		return EffectClear, true
	case session.CueGameOver:
		return EffectGameOver, true
	case session.CueSaved:
		return EffectSaved, true
	default:
		return 0, false
	}
}

// Samples returns the length of e in samples at SampleRate.
func Samples(e Effect) int {
	n := 0
	for _, m := range melodies[e] {
		n += SampleRate.N(m.duration)
	}
	return n
}

// Streamer returns a fresh streamer that plays e once.
func Streamer(e Effect) (beep.Streamer, error) {
	melody, ok := melodies[e]
	if !ok {
		return nil, fmt.Errorf("unknown effect %d", e)
	}

	notes := make([]beep.Streamer, 0, len(melody))
	for _, m := range melody {
		tone, err := generators.SineTone(SampleRate, m.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %v Hz tone: %v", m.freq, err)
		}
		n := SampleRate.N(m.duration)
		notes = append(notes, newFade(beep.Take(n, tone), n, SampleRate.N(5*time.Millisecond)))
	}

	return &effects.Volume{
		Streamer: beep.Seq(notes...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Render synthesizes e into PCM laid out as Format describes.
func Render(e Effect) ([]byte, error) {
	s, err := Streamer(e)
	if err != nil {
		return nil, err
	}

	width := Format.Width()
	out := make([]byte, 0, Samples(e)*width)
	frame := make([]byte, width)
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			Format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render %s: %v", e, err)
	}
	return out, nil
}

// Bank renders each effect once and hands out the cached PCM afterwards.
type Bank struct {
	mu     sync.Mutex
	pcm    map[Effect][]byte
	render func(Effect) ([]byte, error)
}

func NewBank() *Bank {
	return &Bank{
		pcm:    make(map[Effect][]byte),
		render: Render,
	}
}

// Get returns the PCM for e. Callers must not modify the returned slice.
func (b *Bank) Get(e Effect) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pcm, ok := b.pcm[e]; ok {
		return pcm, nil
	}
	pcm, err := b.render(e)
	if err != nil {
		return nil, err
	}
	b.pcm[e] = pcm
	return pcm, nil
}
