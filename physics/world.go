package physics

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/scene"
)

// Command runs inside Step with the simulation-authoritative state
// Impulses crossing goroutines are expressed as commands so force directions
// are computed from the physics transform, never a stale rendered one
type Command func(w *World)

// ContactFunc receives a contact-begin pair synchronously inside Step
// It must classify and hand off without blocking the physics schedule
type ContactFunc func(a, b *Body)

type pairKey struct {
	lo, hi scene.NodeID
}

func makePair(a, b scene.NodeID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// World owns all rigid bodies and steps them on a fixed tick
// Step is single-threaded (the physics schedule), cross-goroutine access
// happens only through the command queue and published snapshots
type World struct {
	bodies  []*Body
	byNode  map[scene.NodeID]*Body
	gravity mgl64.Vec3

	commands chan Command

	onContactBegin ContactFunc
	overlaps       map[pairKey]bool
	overlapsPrev   map[pairKey]bool

	snapshots snapshotBoard
}

func NewWorld() *World {
	return &World{
		byNode:       make(map[scene.NodeID]*Body),
		gravity:      mgl64.Vec3{0, -9.81, 0},
		commands:     make(chan Command, constant.CommandQueueSize),
		overlaps:     make(map[pairKey]bool),
		overlapsPrev: make(map[pairKey]bool),
	}
}

// AddBody registers a body, normalizing a zero orientation to identity
func (w *World) AddBody(b *Body) {
	if b.Orientation.Len() == 0 {
		b.Orientation = mgl64.QuatIdent()
	}
	w.bodies = append(w.bodies, b)
	w.byNode[b.Node] = b
}

// Body looks a body up by its scene node
func (w *World) Body(node scene.NodeID) *Body {
	return w.byNode[node]
}

// SetContactBeginFunc installs the contact-begin callback
// Only begin events are reported, end and persisting contacts are not tracked
func (w *World) SetContactBeginFunc(fn ContactFunc) {
	w.onContactBegin = fn
}

// Enqueue hands a command to the next Step without blocking
// Reports false when the bounded queue is full and the command was dropped
func (w *World) Enqueue(cmd Command) bool {
	select {
	case w.commands <- cmd:
		return true
	default:
		return false
	}
}

// Step advances the simulation by dt: drain commands, integrate, detect contacts,
// publish a snapshot for render-side interpolation
func (w *World) Step(dt time.Duration) {
	w.drainCommands()

	secs := dt.Seconds()
	for _, b := range w.bodies {
		if b.Trigger {
			continue
		}
		w.integrate(b, secs)
	}

	w.detectContacts()
	w.snapshots.publish(w.bodies, dt)
}

func (w *World) drainCommands() {
	for {
		select {
		case cmd := <-w.commands:
			cmd(w)
		default:
			return
		}
	}
}

// integrate is semi-implicit Euler with exponential damping
func (w *World) integrate(b *Body, secs float64) {
	if b.GravityAffected {
		b.Velocity = b.Velocity.Add(w.gravity.Mul(secs))
	}

	b.Velocity = b.Velocity.Mul(math.Exp(-b.LinearDamping * secs))
	b.AngularVelocity = b.AngularVelocity.Mul(math.Exp(-b.AngularDamping * secs))

	b.Position = b.Position.Add(b.Velocity.Mul(secs))

	// World-space angular velocity, pre-multiplied rotation
	angle := b.AngularVelocity.Len() * secs
	if angle > 0 {
		axis := b.AngularVelocity.Mul(1 / b.AngularVelocity.Len())
		spin := mgl64.QuatRotate(angle, axis)
		b.Orientation = spin.Mul(b.Orientation).Normalize()
	}
}

// detectContacts runs sphere overlap tests gated by contact-test masks and
// reports begin events only: a pair fires once per overlap episode
func (w *World) detectContacts() {
	w.overlaps, w.overlapsPrev = w.overlapsPrev, w.overlaps
	clear(w.overlaps)

	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			if !w.contactTested(a, b) {
				continue
			}
			if !spheresOverlap(a, b) {
				continue
			}
			key := makePair(a.Node, b.Node)
			w.overlaps[key] = true
			if !w.overlapsPrev[key] && w.onContactBegin != nil {
				w.onContactBegin(a, b)
			}
		}
	}
}

// contactTested reports whether either side asked to be notified about the other
func (w *World) contactTested(a, b *Body) bool {
	return a.ContactTestMask&b.Category != 0 || b.ContactTestMask&a.Category != 0
}

func spheresOverlap(a, b *Body) bool {
	minDist := a.Radius + b.Radius
	return a.Position.Sub(b.Position).Dot(a.Position.Sub(b.Position)) < minDist*minDist
}

// Rendered returns the interpolated transform for node at now
// This is what the camera tracks, never the raw physics state
func (w *World) Rendered(node scene.NodeID, now time.Time) (mgl64.Vec3, mgl64.Quat, bool) {
	return w.snapshots.rendered(node, now)
}
