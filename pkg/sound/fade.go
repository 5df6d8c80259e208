package sound

import "github.com/gopxl/beep"

// fade ramps the start and end of a note to avoid clicks.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &fade{
		streamer: s,
		total:    total,
		ramp:     ramp,
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			if f.position < f.ramp {
				gain = float64(f.position) / float64(f.ramp)
			} else if remaining := f.total - f.position; remaining < f.ramp {
				gain = float64(remaining) / float64(f.ramp)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
