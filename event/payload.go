package event

import "github.com/lixenwraith/paddle-rush/scene"

// ZoneEnteredPayload identifies the resolved logical zone container
type ZoneEnteredPayload struct {
	Zone scene.NodeID
	Name string
}

// SoundType selects a generated effect
type SoundType uint8

const (
	SoundSplash SoundType = iota
	SoundBump
)

// SoundRequestPayload asks the audio system to play an effect
type SoundRequestPayload struct {
	Sound SoundType
}
