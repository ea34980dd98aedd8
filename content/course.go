package content

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
)

// CameraNodeName is the camera node both front-ends bind the rig to
const CameraNodeName = "camera"

// BuildCourse assembles the demo course: the boat, the camera node and a row
// of buoy gate zones leading to a finish dock.
// Zone colliders are nested two levels below their logical containers, the
// contact bridge resolves ownership upward at runtime
func BuildCourse() (*scene.Graph, *physics.World) {
	g := scene.NewGraph()
	w := physics.NewWorld()

	root := g.Add(scene.InvalidNode, scene.Node{Name: "course"})

	boat := g.Add(root, scene.Node{
		Name:     "boat",
		Role:     scene.RoleTracked,
		Category: scene.CategoryBody,
	})
	w.AddBody(&physics.Body{
		Node:            boat,
		Orientation:     mgl64.QuatIdent(),
		Mass:            constant.BoatMass,
		Radius:          constant.BoatRadius,
		LinearDamping:   constant.BoatLinearDamping,
		AngularDamping:  constant.BoatAngularDamping,
		GravityAffected: false,
		Category:        scene.CategoryBody,
		ContactTestMask: scene.CategoryZone,
	})

	g.Add(root, scene.Node{Name: CameraNodeName})

	addZone(g, w, root, "gate-1", mgl64.Vec3{-6, 0, -18}, 2.5)
	addZone(g, w, root, "gate-2", mgl64.Vec3{7, 0, -34}, 2.5)
	addZone(g, w, root, "gate-3", mgl64.Vec3{-4, 0, -52}, 2.5)
	addZone(g, w, root, "finish-dock", mgl64.Vec3{0, 0, -70}, 4.0)

	return g, w
}

// addZone builds one logical zone container with its collidable geometry
// nested below a shape holder node
func addZone(g *scene.Graph, w *physics.World, parent scene.NodeID, name string, pos mgl64.Vec3, radius float64) {
	container := g.Add(parent, scene.Node{
		Name:          name,
		Role:          scene.RoleZone,
		LocalPosition: pos,
	})
	shape := g.Add(container, scene.Node{Name: name + "-shape"})
	collider := g.Add(shape, scene.Node{
		Name:     name + "-collider",
		Category: scene.CategoryZone,
	})

	w.AddBody(&physics.Body{
		Node:            collider,
		Position:        pos,
		Orientation:     mgl64.QuatIdent(),
		Radius:          radius,
		Category:        scene.CategoryZone,
		ContactTestMask: scene.CategoryBody,
		Trigger:         true,
	})
}
