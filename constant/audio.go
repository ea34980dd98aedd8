package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound Effects
const (
	SplashToneFreq     = 220.0
	SplashToneDuration = 90 * time.Millisecond

	BumpToneFreq     = 660.0
	BumpToneDuration = 120 * time.Millisecond
)
