package event

// EventType represents the type of game event
type EventType int

const (
	// EventZoneEntered signals the tracked body began overlapping an interactive zone
	// Trigger: physics contact begin | Consumer: game logic callback | Payload: *ZoneEnteredPayload
	EventZoneEntered EventType = iota

	// EventSoundRequest requests audio playback
	// Trigger: paddle strokes, zone entries | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventGameReset asks systems to drop session state
	// Trigger: host shell | Consumer: all systems | Payload: nil
	EventGameReset
)

// GameEvent is the unit carried by the event queue
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
