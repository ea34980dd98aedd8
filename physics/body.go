package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paddle-rush/scene"
)

// Body is a rigid body owned by the simulation world
// Trigger bodies report contacts but are never integrated
type Body struct {
	Node scene.NodeID

	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	Mass float64

	// LinearDamping and AngularDamping are exponential decay rates per second
	LinearDamping  float64
	AngularDamping float64

	// GravityAffected is false for the boat, buoyancy is not simulated
	GravityAffected bool

	Category        scene.Category
	ContactTestMask scene.Category

	Radius  float64
	Trigger bool
}

// ApplyImpulse adds an instantaneous velocity change scaled by inverse mass
func (b *Body) ApplyImpulse(impulse mgl64.Vec3) {
	if b.Trigger {
		return
	}
	if b.Mass > 0 {
		b.Velocity = b.Velocity.Add(impulse.Mul(1.0 / b.Mass))
	} else {
		b.Velocity = b.Velocity.Add(impulse)
	}
}

// ApplyTorqueImpulse adds an instantaneous angular velocity change
// Inertia is approximated by mass, sufficient for a single steered craft
func (b *Body) ApplyTorqueImpulse(torque mgl64.Vec3) {
	if b.Trigger {
		return
	}
	if b.Mass > 0 {
		b.AngularVelocity = b.AngularVelocity.Add(torque.Mul(1.0 / b.Mass))
	} else {
		b.AngularVelocity = b.AngularVelocity.Add(torque)
	}
}
