package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/core"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/physics"
)

type paddleFixture struct {
	game  *engine.Game
	body  *physics.Body
	clock *engine.MockClock
}

func newTestPaddle(t *testing.T) (*PaddleSystem, *paddleFixture) {
	t.Helper()
	clock := engine.NewMockClock()
	g, body := newTestGame(t, clock)
	ps := NewPaddleSystem(g, testTuning(), zerolog.Nop())
	return ps, &paddleFixture{game: g, body: body, clock: clock}
}

func TestCooldownGuardIsExact(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Activate(core.SideLeft)
	ps.Activate(core.SideLeft)
	ps.Activate(core.SideLeft)

	if got := drainSounds(fx.game); got != 1 {
		t.Fatalf("activations = %d, cooldown must reject all repeats", got)
	}

	fx.game.World.Step(time.Millisecond)

	// Exactly one torque impulse landed
	want := -ps.tuning.RotationForce / fx.body.Mass
	if math.Abs(fx.body.AngularVelocity.Y()-want) > 1e-9 {
		t.Errorf("angular velocity = %v, expected single impulse %v", fx.body.AngularVelocity.Y(), want)
	}
}

func TestTurnTorqueSigns(t *testing.T) {
	tests := []struct {
		name string
		side core.Side
		sign float64
	}{
		{"Left turns negative", core.SideLeft, -1},
		{"Right turns positive", core.SideRight, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, fx := newTestPaddle(t)
			ps.Activate(tt.side)
			fx.game.World.Step(time.Millisecond)

			got := fx.body.AngularVelocity.Y()
			want := tt.sign * ps.tuning.RotationForce / fx.body.Mass
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("angular velocity Y = %v, expected %v", got, want)
			}
		})
	}
}

func TestLateralForceSignsOppose(t *testing.T) {
	// Identity orientation: forward -Z, right +X. A left stroke pushes the
	// nose right (+X), a right stroke pushes it left (-X)
	psL, fxL := newTestPaddle(t)
	psL.Activate(core.SideLeft)
	fxL.game.World.Step(time.Millisecond)

	psR, fxR := newTestPaddle(t)
	psR.Activate(core.SideRight)
	fxR.game.World.Step(time.Millisecond)

	if fxL.body.Velocity.X() <= 0 {
		t.Errorf("left stroke lateral X = %v, expected positive", fxL.body.Velocity.X())
	}
	if fxR.body.Velocity.X() >= 0 {
		t.Errorf("right stroke lateral X = %v, expected negative", fxR.body.Velocity.X())
	}
	if math.Abs(fxL.body.Velocity.X()+fxR.body.Velocity.X()) > 1e-9 {
		t.Errorf("lateral magnitudes differ: %v vs %v", fxL.body.Velocity.X(), fxR.body.Velocity.X())
	}

	// Both strokes thrust forward
	if fxL.body.Velocity.Z() >= 0 || fxR.body.Velocity.Z() >= 0 {
		t.Errorf("strokes must thrust forward (-Z): %v, %v", fxL.body.Velocity.Z(), fxR.body.Velocity.Z())
	}
}

func TestForceStaysHorizontal(t *testing.T) {
	orientations := []struct {
		name string
		rot  mgl64.Quat
	}{
		{"Level", mgl64.QuatIdent()},
		{"Pitched up 45", mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{1, 0, 0})},
		{"Pitched fully vertical", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})},
		{"Rolled 90", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})},
	}

	for _, tt := range orientations {
		t.Run(tt.name, func(t *testing.T) {
			ps, fx := newTestPaddle(t)
			fx.body.Orientation = tt.rot

			ps.Activate(core.SideLeft)
			fx.game.World.Step(time.Millisecond)

			if fx.body.Velocity.Y() != 0 {
				t.Errorf("vertical velocity = %v, force must stay in the horizontal plane", fx.body.Velocity.Y())
			}
		})
	}
}

func TestStrokeDirectionFallbacks(t *testing.T) {
	// Pitched fully vertical: horizontal forward vanishes, lateral remains
	pitched := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})
	dir, ok := strokeDirection(pitched, core.SideLeft, 0.35)
	if !ok {
		t.Fatal("lateral-only direction should still be usable")
	}
	if dir.Y() != 0 {
		t.Errorf("fallback direction has vertical component %v", dir.Y())
	}
	if dir.X() <= 0 {
		t.Errorf("left stroke lateral fallback = %v, expected +X", dir)
	}

	// Rolled 90: lateral vanishes, pure forward fallback applies
	rolled := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	dir, ok = strokeDirection(rolled, core.SideLeft, 0.35)
	if !ok {
		t.Fatal("pure forward fallback should apply")
	}
	if math.Abs(dir.Z()+1) > 1e-9 || dir.Y() != 0 {
		t.Errorf("forward fallback = %v, expected -Z", dir)
	}

	// Vertical with no lateral bias: forward and lateral both degenerate
	if _, ok := strokeDirection(pitched, core.SideLeft, 0); ok {
		t.Error("fully degenerate direction must apply no force")
	}
}

func TestAutoRepeatWhileHeld(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Press(core.SideLeft)
	if got := drainSounds(fx.game); got != 1 {
		t.Fatalf("activations after press = %d", got)
	}

	// Each cooldown expiry re-fires while the key is held
	fx.clock.Advance(ps.tuning.Cooldown())
	if got := drainSounds(fx.game); got != 1 {
		t.Fatalf("activations after first expiry = %d, expected 1 more", got)
	}
	fx.clock.Advance(ps.tuning.Cooldown())
	if got := drainSounds(fx.game); got != 1 {
		t.Fatalf("activations after second expiry = %d, expected 1 more", got)
	}
}

func TestReleaseSuppressesNextRepeat(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Press(core.SideLeft)
	drainSounds(fx.game)

	// Released during the active cooldown: the chain self-terminates when
	// the pending timer fires, no further activations occur
	ps.Release(core.SideLeft)
	fx.clock.Advance(10 * ps.tuning.Cooldown())

	if got := drainSounds(fx.game); got != 0 {
		t.Errorf("activations after release = %d, expected 0", got)
	}
	if ps.OnCooldown(core.SideLeft) {
		t.Error("cooldown should have cleared after expiry")
	}
	if fx.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, chain must stop", fx.clock.Pending())
	}
}

func TestKeyUpDoesNotCancelCooldown(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Press(core.SideRight)
	ps.Release(core.SideRight)

	if !ps.OnCooldown(core.SideRight) {
		t.Fatal("release must not cancel the in-flight cooldown")
	}

	// Re-press during cooldown is still rejected
	ps.Press(core.SideRight)
	drainSounds(fx.game)
	fx.game.World.Step(time.Millisecond)

	want := ps.tuning.RotationForce / fx.body.Mass
	if math.Abs(fx.body.AngularVelocity.Y()-want) > 1e-9 {
		t.Errorf("angular velocity = %v, expected exactly one stroke", fx.body.AngularVelocity.Y())
	}
}

func TestSidesCooldownIndependently(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Activate(core.SideLeft)
	ps.Activate(core.SideRight)

	if got := drainSounds(fx.game); got != 2 {
		t.Errorf("activations = %d, sides must not share a cooldown", got)
	}
}

func TestReset(t *testing.T) {
	ps, fx := newTestPaddle(t)

	ps.Press(core.SideLeft)
	ps.Press(core.SideRight)
	ps.Reset()

	if ps.OnCooldown(core.SideLeft) || ps.OnCooldown(core.SideRight) {
		t.Error("reset must clear cooldowns")
	}

	drainSounds(fx.game)
	fx.clock.Advance(10 * ps.tuning.Cooldown())
	if got := drainSounds(fx.game); got != 0 {
		t.Errorf("activations after reset = %d, held flags must be cleared", got)
	}
}
