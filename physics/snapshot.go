package physics

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paddle-rush/scene"
	"github.com/lixenwraith/paddle-rush/vmath"
)

// bodyState is a body's transform captured after a physics step
type bodyState struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// snapshot captures all body transforms at one step
type snapshot struct {
	states map[scene.NodeID]bodyState
	at     time.Time
}

// snapshotPair holds the two most recent snapshots for render interpolation
type snapshotPair struct {
	prev, curr *snapshot
	stepDT     time.Duration
}

// snapshotBoard publishes step results to the render goroutine lock-free
// The physics schedule writes, the UI schedule reads the latest pointer
type snapshotBoard struct {
	pair atomic.Pointer[snapshotPair]
}

func (sb *snapshotBoard) publish(bodies []*Body, stepDT time.Duration) {
	s := &snapshot{
		states: make(map[scene.NodeID]bodyState, len(bodies)),
		at:     time.Now(),
	}
	for _, b := range bodies {
		s.states[b.Node] = bodyState{Position: b.Position, Orientation: b.Orientation}
	}

	prev := s
	if old := sb.pair.Load(); old != nil {
		prev = old.curr
	}
	sb.pair.Store(&snapshotPair{prev: prev, curr: s, stepDT: stepDT})
}

// rendered interpolates between the two most recent snapshots by wall time
// Returns false before the first step so callers can skip silently
func (sb *snapshotBoard) rendered(node scene.NodeID, now time.Time) (mgl64.Vec3, mgl64.Quat, bool) {
	pair := sb.pair.Load()
	if pair == nil {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}

	cur, ok := pair.curr.states[node]
	if !ok {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}
	prv, ok := pair.prev.states[node]
	if !ok || pair.stepDT <= 0 {
		return cur.Position, cur.Orientation, true
	}

	alpha := float64(now.Sub(pair.curr.at)) / float64(pair.stepDT)
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	pos := vmath.Lerp(prv.Position, cur.Position, alpha)
	rot := vmath.Slerp(prv.Orientation, cur.Orientation, alpha)
	return pos, rot, true
}
