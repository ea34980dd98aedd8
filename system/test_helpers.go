package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/config"
	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
)

// testTuning returns the default tuning values without going through viper
func testTuning() *config.Tuning {
	return &config.Tuning{
		RotationForce:        constant.PaddleRotationForce,
		ForwardForce:         constant.PaddleForwardForce,
		LateralScale:         constant.PaddleLateralScale,
		CooldownMillis:       int(constant.PaddleCooldown / time.Millisecond),
		PositionSmoothing:    constant.CameraPositionSmoothing,
		OrientationSmoothing: constant.CameraOrientationSmoothing,
		CameraHeight:         constant.CameraHeight,
		CameraBackDistance:   constant.CameraBackDistance,
	}
}

// newTestGame builds a minimal course: a boat with zero damping for exact
// impulse assertions, plus a camera node
func newTestGame(t *testing.T, clock engine.Clock) (*engine.Game, *physics.Body) {
	t.Helper()

	graph := scene.NewGraph()
	root := graph.Add(scene.InvalidNode, scene.Node{Name: "course"})
	boat := graph.Add(root, scene.Node{
		Name:     "boat",
		Role:     scene.RoleTracked,
		Category: scene.CategoryBody,
	})
	graph.Add(root, scene.Node{Name: "camera"})

	world := physics.NewWorld()
	world.AddBody(&physics.Body{
		Node:            boat,
		Orientation:     mgl64.QuatIdent(),
		Mass:            10,
		Radius:          1,
		Category:        scene.CategoryBody,
		ContactTestMask: scene.CategoryZone,
	})

	g, err := engine.NewGame(graph, world, clock, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, world.Body(boat)
}

// drainSounds counts pending sound request events, one per paddle activation
func drainSounds(g *engine.Game) int {
	n := 0
	for _, ev := range g.Queue.ConsumeInto(nil) {
		if ev.Type == event.EventSoundRequest {
			n++
		}
	}
	return n
}
