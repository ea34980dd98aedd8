package system

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/config"
	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/core"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
	"github.com/lixenwraith/paddle-rush/vmath"
)

// paddleState is per-side stroke lifecycle state
// Idle -> Cooldown -> Idle, driven by a single one-shot timer
type paddleState struct {
	onCooldown bool
	keyHeld    bool
	timer      engine.Timer
}

// PaddleSystem converts discrete paddle strokes into torque and force impulses
// on the tracked body, rate-limited per side by a cooldown timer.
// State is mutex-guarded because timer callbacks fire on their own goroutine
type PaddleSystem struct {
	mu sync.Mutex

	world   *physics.World
	queue   *event.EventQueue
	clock   engine.Clock
	tuning  *config.Tuning
	log     zerolog.Logger
	tracked scene.NodeID

	states [core.SideCount]paddleState
}

// NewPaddleSystem creates the paddle impulse system for the game's tracked body
func NewPaddleSystem(g *engine.Game, tuning *config.Tuning, log zerolog.Logger) *PaddleSystem {
	return &PaddleSystem{
		world:   g.World,
		queue:   g.Queue,
		clock:   g.Clock,
		tuning:  tuning,
		log:     log,
		tracked: g.Tracked,
	}
}

func (s *PaddleSystem) Name() string {
	return "paddle"
}

func (s *PaddleSystem) Priority() int {
	return constant.PriorityPaddle
}

// Update is a no-op: activation is edge- and timer-driven, never polled
func (s *PaddleSystem) Update() {}

func (s *PaddleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *PaddleSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Reset()
	}
}

// Press marks the side held and fires one edge-triggered activation
func (s *PaddleSystem) Press(side core.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[side].keyHeld = true
	s.activateLocked(side)
}

// Release clears the held flag only, an in-flight cooldown keeps running
// The auto-repeat chain self-terminates when its timer next fires
func (s *PaddleSystem) Release(side core.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[side].keyHeld = false
}

// Activate applies one stroke for side unless that side is on cooldown
func (s *PaddleSystem) Activate(side core.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateLocked(side)
}

// OnCooldown reports the side's cooldown state
func (s *PaddleSystem) OnCooldown(side core.Side) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[side].onCooldown
}

// Reset stops pending timers and clears all paddle state
func (s *PaddleSystem) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.states {
		if s.states[i].timer != nil {
			s.states[i].timer.Stop()
		}
		s.states[i] = paddleState{}
	}
}

func (s *PaddleSystem) activateLocked(side core.Side) {
	st := &s.states[side]
	if st.onCooldown {
		return
	}
	st.onCooldown = true
	st.timer = s.clock.AfterFunc(s.tuning.Cooldown(), func() {
		s.expire(side)
	})

	// The impulse command executes inside the next physics step so the stroke
	// direction comes from the simulation-authoritative transform
	if !s.world.Enqueue(func(w *physics.World) {
		s.applyStroke(w, side)
	}) {
		s.log.Debug().Str("side", side.String()).Msg("paddle command queue full, stroke dropped")
	}

	s.queue.Push(event.GameEvent{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: event.SoundSplash},
	})
}

// expire clears the cooldown, re-firing while the key is still held
// This produces continuous paddling rate-limited by the cooldown interval,
// independent of render frame rate
func (s *PaddleSystem) expire(side core.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &s.states[side]
	st.onCooldown = false
	st.timer = nil
	if st.keyHeld {
		s.activateLocked(side)
	}
}

// applyStroke applies the turn and thrust impulses for one stroke
// Runs on the physics schedule
func (s *PaddleSystem) applyStroke(w *physics.World, side core.Side) {
	body := w.Body(s.tracked)
	if body == nil {
		return
	}

	turn := s.tuning.RotationForce
	if side == core.SideLeft {
		turn = -turn
	}
	body.ApplyTorqueImpulse(mgl64.Vec3{0, turn, 0})

	if dir, ok := strokeDirection(body.Orientation, side, s.tuning.LateralScale); ok {
		body.ApplyImpulse(dir.Mul(s.tuning.ForwardForce))
	}
}

// strokeDirection builds the horizontal unit thrust direction for a stroke.
// Paddling on one side pushes the nose toward the opposite side, so the
// lateral bias is positive for Left and negative for Right.
// Degenerate directions fall back progressively: combined direction, then pure
// horizontal forward, then no thrust at all. Never returns a NaN vector
func strokeDirection(orientation mgl64.Quat, side core.Side, lateralScale float64) (mgl64.Vec3, bool) {
	if side == core.SideRight {
		lateralScale = -lateralScale
	}

	forward := vmath.Forward(orientation)
	right := vmath.Right(orientation)

	combined := vmath.Horizontal(forward.Add(right.Mul(lateralScale)))
	if dir, ok := vmath.NormalizeOrZero(combined, constant.DirectionEpsilon); ok {
		return dir, true
	}

	if dir, ok := vmath.NormalizeOrZero(vmath.Horizontal(forward), constant.DirectionEpsilon); ok {
		return dir, true
	}

	return mgl64.Vec3{}, false
}
