package system

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/paddle-rush/config"
	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/engine"
	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/scene"
	"github.com/lixenwraith/paddle-rush/vmath"
)

// TransformSource yields a body's rendered (interpolated) transform
// The camera tracks this, never the raw physics transform, so physics-step
// jitter cannot feed back into the view
type TransformSource interface {
	Rendered(node scene.NodeID, now time.Time) (mgl64.Vec3, mgl64.Quat, bool)
}

// CameraSystem owns the camera pivot and smooths it toward the tracked body.
// Bind reparents the camera under a fresh pivot with a fixed local offset,
// Track lags the pivot behind the body by exponential smoothing
type CameraSystem struct {
	graph   *scene.Graph
	source  TransformSource
	clock   engine.Clock
	tuning  *config.Tuning
	tracked scene.NodeID

	pivot  scene.NodeID
	camera scene.NodeID
}

// NewCameraSystem binds the named camera node to the game's tracked body
// A missing camera node is a structural setup failure
func NewCameraSystem(g *engine.Game, tuning *config.Tuning, cameraName string) (*CameraSystem, error) {
	camera, ok := g.Graph.Find(cameraName)
	if !ok {
		return nil, fmt.Errorf("scene has no camera node %q", cameraName)
	}

	s := &CameraSystem{
		graph:   g.Graph,
		source:  g.World,
		clock:   g.Clock,
		tuning:  tuning,
		tracked: g.Tracked,
		camera:  camera,
	}
	s.bind(g)
	return s, nil
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return constant.PriorityCamera
}

func (s *CameraSystem) EventTypes() []event.EventType {
	return nil
}

func (s *CameraSystem) HandleEvent(ev event.GameEvent) {}

// Update runs one Track step per rendered frame
func (s *CameraSystem) Update() {
	s.Track(s.clock.Now())
}

// Pivot returns the pivot node the camera hangs from
func (s *CameraSystem) Pivot() scene.NodeID {
	return s.pivot
}

// bind creates the pivot, hangs the camera under it with a fixed local offset
// and snaps the pivot to the body's current transform. No smoothing on the
// first frame, a later snap-in would be visible
func (s *CameraSystem) bind(g *engine.Game) {
	s.pivot = s.graph.Add(scene.InvalidNode, scene.Node{Name: "cameraPivot"})

	offset := mgl64.Vec3{0, s.tuning.CameraHeight, s.tuning.CameraBackDistance}
	lookAt := mgl64.Vec3{0, 0, -constant.CameraLookAhead}

	s.graph.Reparent(s.camera, s.pivot)
	s.graph.SetLocal(s.camera, offset, mgl64.QuatLookAtV(offset, lookAt, mgl64.Vec3{0, 1, 0}))

	body := g.World.Body(s.tracked)
	s.graph.SetLocal(s.pivot, body.Position, body.Orientation)
}

// Track moves the pivot toward the tracked body's rendered transform.
// Position uses a fixed interpolation fraction per call, orientation a smaller
// one so rotational catch-up is deliberately slower than positional catch-up.
// Skips silently while the body has no snapshot yet, setup ordering allows that
func (s *CameraSystem) Track(now time.Time) {
	targetPos, targetRot, ok := s.source.Rendered(s.tracked, now)
	if !ok {
		return
	}

	pivot := s.graph.Node(s.pivot)
	if pivot == nil {
		return
	}

	pos := vmath.Lerp(pivot.LocalPosition, targetPos, s.tuning.PositionSmoothing)
	rot := vmath.Slerp(pivot.LocalRotation, targetRot, s.tuning.OrientationSmoothing)
	s.graph.SetLocal(s.pivot, pos, rot)
}
