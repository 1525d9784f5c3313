package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls every sample out of a streamer.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			out = append(out, sample[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestToneLength(t *testing.T) {
	rate := defaultSampleRate
	dur := 70 * time.Millisecond
	samples := drain(t, newTone(rate, 880, 880, dur, 0.4))

	if len(samples) != rate.N(dur) {
		t.Errorf("tone produced %d samples, expected %d", len(samples), rate.N(dur))
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	samples := drain(t, newTone(defaultSampleRate, 440, 110, 100*time.Millisecond, 0.45))

	for i, v := range samples {
		if math.Abs(v) > 0.45+1e-9 {
			t.Fatalf("sample %d = %f exceeds the volume bound", i, v)
		}
	}
}

func TestToneEnvelopeEdges(t *testing.T) {
	samples := drain(t, newTone(defaultSampleRate, 880, 880, 70*time.Millisecond, 0.4))

	if math.Abs(samples[0]) > 1e-6 {
		t.Errorf("tone should start silent, got %f", samples[0])
	}
	last := samples[len(samples)-1]
	if math.Abs(last) > 0.02 {
		t.Errorf("tone should fade out, last sample %f", last)
	}
}

func TestToneStereo(t *testing.T) {
	s := newTone(defaultSampleRate, 660, 660, 20*time.Millisecond, 0.3)
	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	if n == 0 {
		t.Fatal("no samples streamed")
	}
	for i := 0; i < n; i++ {
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d not identical across channels", i)
		}
	}
}

func TestEffectStreamersDrain(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
	}{
		{"eat", eatTone(defaultSampleRate)},
		{"level up", levelUpTone(defaultSampleRate)},
		{"game over", gameOverTone(defaultSampleRate)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples := drain(t, tc.s)
			if len(samples) == 0 {
				t.Error("effect produced no samples")
			}
		})
	}
}

func TestNopSink(t *testing.T) {
	// Must be safe to call without any audio backend.
	var s Sink = NopSink{}
	s.PlayEat()
	s.PlayLevelUp()
	s.PlayGameOver()

	if got := NewSink(true); got != (NopSink{}) {
		t.Errorf("muted NewSink should return NopSink, got %T", got)
	}
}
