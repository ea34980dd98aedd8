package input

import (
	"testing"

	"github.com/lixenwraith/paddle-rush/core"
)

// recorder counts Press and Release calls per side
type recorder struct {
	presses  [core.SideCount]int
	releases [core.SideCount]int
}

func (r *recorder) Press(side core.Side)   { r.presses[side]++ }
func (r *recorder) Release(side core.Side) { r.releases[side]++ }

func TestKeyDownTriggersOneActivation(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r)

	if !m.HandleKeyDown(KeyPaddleLeft) {
		t.Fatal("paddle key should be consumed")
	}
	if r.presses[core.SideLeft] != 1 {
		t.Errorf("presses = %d, expected edge-triggered single activation", r.presses[core.SideLeft])
	}
}

func TestNonPaddleKeysPassThrough(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r)

	if m.HandleKeyDown(KeyNone) {
		t.Error("unknown key-down should not be consumed")
	}
	if m.HandleKeyUp(KeyNone) {
		t.Error("unknown key-up should not be consumed")
	}
	if r.presses[core.SideLeft]+r.presses[core.SideRight] != 0 {
		t.Error("unknown keys must not reach the paddler")
	}
}

func TestOSRepeatSwallowed(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r)

	// OS auto-repeat delivers repeated downs without an intervening up
	m.HandleKeyDown(KeyPaddleRight)
	m.HandleKeyDown(KeyPaddleRight)
	m.HandleKeyDown(KeyPaddleRight)

	if r.presses[core.SideRight] != 1 {
		t.Errorf("presses = %d, repeats must be swallowed", r.presses[core.SideRight])
	}
}

func TestKeyUpEnablesNextEdge(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r)

	m.HandleKeyDown(KeyPaddleLeft)
	if !m.HandleKeyUp(KeyPaddleLeft) {
		t.Fatal("paddle key-up should be consumed")
	}
	m.HandleKeyDown(KeyPaddleLeft)

	if r.presses[core.SideLeft] != 2 {
		t.Errorf("presses = %d, expected 2 after down-up-down", r.presses[core.SideLeft])
	}
	if r.releases[core.SideLeft] != 1 {
		t.Errorf("releases = %d, expected 1", r.releases[core.SideLeft])
	}
}

func TestSidesIndependent(t *testing.T) {
	r := &recorder{}
	m := NewMachine(r)

	m.HandleKeyDown(KeyPaddleLeft)
	m.HandleKeyDown(KeyPaddleRight)
	m.HandleKeyUp(KeyPaddleLeft)
	m.HandleKeyDown(KeyPaddleRight) // repeat, right is still down

	if r.presses[core.SideLeft] != 1 || r.presses[core.SideRight] != 1 {
		t.Errorf("presses = %v", r.presses)
	}
	if r.releases[core.SideRight] != 0 {
		t.Errorf("right releases = %d, expected 0", r.releases[core.SideRight])
	}
}
