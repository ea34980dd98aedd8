package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NodeID is a stable arena index into a Graph
type NodeID int32

// InvalidNode marks an absent parent or failed lookup
const InvalidNode NodeID = -1

// Role tags a node's logical function in the scene
// Replaces runtime type inspection when resolving contact owners
type Role uint8

const (
	RolePlain Role = iota
	RoleTracked
	RoleZone
)

// Category is a collision category bitmask
// Exactly one category per physics-enabled node
type Category uint32

const (
	CategoryNone Category = 0
	CategoryBody Category = 1 << 0
	CategoryZone Category = 1 << 1
)

// Node is an arena-allocated scene graph node
// Parent is a weak back-reference by index, Children are owned
type Node struct {
	Name     string
	Role     Role
	Category Category
	Parent   NodeID
	Children []NodeID

	LocalPosition mgl64.Vec3
	LocalRotation mgl64.Quat
}
