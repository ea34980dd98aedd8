package input

import (
	"sync"

	"github.com/lixenwraith/paddle-rush/core"
)

// Key is a host-independent logical key code
// Host front-ends map their native key events onto these before forwarding
type Key uint8

const (
	KeyNone Key = iota
	KeyPaddleLeft
	KeyPaddleRight
)

// Paddler receives edge-triggered paddle strokes
// Press fires one activation and marks the key held, Release clears held only
type Paddler interface {
	Press(side core.Side)
	Release(side core.Side)
}

// Machine tracks raw key-down/key-up edges for the two paddle controls
// Activation is edge-triggered on key-down, decoupled from OS repeat rate:
// repeated downs without an intervening up are swallowed
type Machine struct {
	mu     sync.Mutex
	down   [core.SideCount]bool
	paddle Paddler
}

func NewMachine(paddle Paddler) *Machine {
	return &Machine{paddle: paddle}
}

// HandleKeyDown reports whether the key was consumed
// Non-paddle keys return false so the surrounding input system still sees them
func (m *Machine) HandleKeyDown(k Key) bool {
	side, ok := sideFor(k)
	if !ok {
		return false
	}

	m.mu.Lock()
	repeat := m.down[side]
	m.down[side] = true
	m.mu.Unlock()

	if !repeat {
		m.paddle.Press(side)
	}
	return true
}

// HandleKeyUp clears the held flag, it does not cancel an in-flight cooldown
func (m *Machine) HandleKeyUp(k Key) bool {
	side, ok := sideFor(k)
	if !ok {
		return false
	}

	m.mu.Lock()
	m.down[side] = false
	m.mu.Unlock()

	m.paddle.Release(side)
	return true
}

func sideFor(k Key) (core.Side, bool) {
	switch k {
	case KeyPaddleLeft:
		return core.SideLeft, true
	case KeyPaddleRight:
		return core.SideRight, true
	default:
		return 0, false
	}
}
