package system

import (
	"github.com/lixenwraith/paddle-rush/audio"
	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/event"
)

// AudioSystem plays effect tones for sound request events
// Runs on the UI schedule, playback itself is asynchronous inside the speaker
type AudioSystem struct {
	engine *audio.Engine
}

func NewAudioSystem(engine *audio.Engine) *AudioSystem {
	return &AudioSystem{engine: engine}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return constant.PriorityAudio
}

func (s *AudioSystem) Update() {}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	switch p.Sound {
	case event.SoundSplash:
		s.engine.PlaySplash()
	case event.SoundBump:
		s.engine.PlayBump()
	}
}
