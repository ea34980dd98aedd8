package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the target render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsTickInterval is the fixed physics step interval
	PhysicsTickInterval = time.Second / 60

	// CommandQueueSize bounds pending impulse commands into the physics step
	CommandQueueSize = 64
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
