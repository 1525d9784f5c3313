package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a finite sine oscillator with a linear frequency sweep and an
// attack/release envelope baked in. Streams stereo samples in [-1, 1].
type tone struct {
	fromFreq float64
	toFreq   float64
	volume   float64
	phase    float64
	total    int
	position int
	attack   int
	release  int
	rate     beep.SampleRate
}

// newTone creates a tone sweeping from fromFreq to toFreq over the given
// duration. Equal frequencies produce a steady pitch.
func newTone(rate beep.SampleRate, fromFreq, toFreq float64, duration time.Duration, volume float64) beep.Streamer {
	total := rate.N(duration)
	attack := rate.N(5 * time.Millisecond)
	release := rate.N(20 * time.Millisecond)
	if attack+release > total {
		attack = total / 4
		release = total / 4
	}
	return &tone{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		volume:   volume,
		total:    total,
		attack:   attack,
		release:  release,
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		progress := float64(t.position) / float64(t.total)
		freq := t.fromFreq + (t.toFreq-t.fromFreq)*progress

		val := math.Sin(2*math.Pi*t.phase) * t.volume * t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

// gain is the envelope value at the current position.
func (t *tone) gain() float64 {
	switch {
	case t.position < t.attack:
		return float64(t.position) / float64(t.attack)
	case t.position >= t.total-t.release:
		return float64(t.total-t.position) / float64(t.release)
	default:
		return 1
	}
}

func (t *tone) Err() error { return nil }

// eatTone is a single bright blip.
func eatTone(rate beep.SampleRate) beep.Streamer {
	return newTone(rate, 880, 880, 70*time.Millisecond, 0.4)
}

// levelUpTone is an ascending three-note arpeggio.
func levelUpTone(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(rate, 523.25, 523.25, 90*time.Millisecond, 0.35), // C5
		newTone(rate, 659.25, 659.25, 90*time.Millisecond, 0.35), // E5
		newTone(rate, 783.99, 783.99, 140*time.Millisecond, 0.35), // G5
	)
}

// gameOverTone is a long falling sweep.
func gameOverTone(rate beep.SampleRate) beep.Streamer {
	return newTone(rate, 440, 110, 600*time.Millisecond, 0.45)
}
