// Package audio plays short synthesized sound effects through gopxl/beep.
// Sounds are generated, not loaded from assets, so there is nothing to go
// missing on disk. When no audio backend is available the sink degrades to
// a no-op; playback never fails the game.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// Sink receives fire-and-forget game sound events.
type Sink interface {
	PlayEat()
	PlayLevelUp()
	PlayGameOver()
}

// NopSink ignores every sound event. Used when audio is muted or the
// speaker cannot be initialized.
type NopSink struct{}

func (NopSink) PlayEat()      {}
func (NopSink) PlayLevelUp()  {}
func (NopSink) PlayGameOver() {}

type speakerSink struct {
	rate beep.SampleRate
}

// NewSink initializes the speaker and returns a playing sink. With muted
// set, or when speaker initialization fails (no audio device, headless
// host), it returns a NopSink instead of an error.
func NewSink(muted bool) Sink {
	if muted {
		return NopSink{}
	}
	if err := speaker.Init(defaultSampleRate, defaultSampleRate.N(50*time.Millisecond)); err != nil {
		return NopSink{}
	}
	return &speakerSink{rate: defaultSampleRate}
}

// PlayEat plays a short bright blip.
func (s *speakerSink) PlayEat() {
	speaker.Play(eatTone(s.rate))
}

// PlayLevelUp plays a three-note ascending arpeggio.
func (s *speakerSink) PlayLevelUp() {
	speaker.Play(levelUpTone(s.rate))
}

// PlayGameOver plays a falling sweep.
func (s *speakerSink) PlayGameOver() {
	speaker.Play(gameOverTone(s.rate))
}
