package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/paddle-rush/constant"
)

// Engine plays short generated effect tones through the system speaker
// Initialization failure is non-fatal, the game runs silent
type Engine struct {
	enabled    bool
	sampleRate beep.SampleRate
}

// NewEngine initializes the speaker, returning a silent engine on failure
func NewEngine() (*Engine, error) {
	e := &Engine{sampleRate: beep.SampleRate(constant.AudioSampleRate)}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Enabled reports whether the speaker initialized
func (e *Engine) Enabled() bool {
	return e.enabled
}

// PlaySplash plays the paddle stroke effect
func (e *Engine) PlaySplash() {
	e.playTone(constant.SplashToneFreq, constant.SplashToneDuration)
}

// PlayBump plays the zone entry effect
func (e *Engine) PlayBump() {
	e.playTone(constant.BumpToneFreq, constant.BumpToneDuration)
}

func (e *Engine) playTone(freq float64, dur time.Duration) {
	if !e.enabled {
		return
	}
	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(dur), sine))
}

// Stop releases the speaker
func (e *Engine) Stop() {
	if e.enabled {
		speaker.Close()
		e.enabled = false
	}
}
