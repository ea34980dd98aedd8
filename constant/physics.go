package constant

// Boat Body
const (
	BoatMass   = 14.0
	BoatRadius = 0.9

	// BoatLinearDamping and BoatAngularDamping are exponential decay rates per second
	// Angular damping is higher so turns settle before drift does
	BoatLinearDamping  = 0.4
	BoatAngularDamping = 0.8
)

// Numerics
const (
	// DirectionEpsilon is the minimum length for a stroke direction to be usable
	// Below this the progressive fallback chain applies instead of normalizing
	DirectionEpsilon = 1e-6
)
