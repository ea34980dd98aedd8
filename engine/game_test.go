package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
)

// stubSystem records dispatch and update calls into a shared trace
type stubSystem struct {
	name     string
	priority int
	types    []event.EventType
	trace    *[]string
}

func (s *stubSystem) Name() string                  { return s.name }
func (s *stubSystem) Priority() int                 { return s.priority }
func (s *stubSystem) Update()                       { *s.trace = append(*s.trace, "update:"+s.name) }
func (s *stubSystem) EventTypes() []event.EventType { return s.types }
func (s *stubSystem) HandleEvent(ev event.GameEvent) {
	*s.trace = append(*s.trace, "event:"+s.name)
}

func newTrackedScene(t *testing.T) (*scene.Graph, *physics.World) {
	t.Helper()
	graph := scene.NewGraph()
	boat := graph.Add(scene.InvalidNode, scene.Node{
		Name:     "boat",
		Role:     scene.RoleTracked,
		Category: scene.CategoryBody,
	})
	world := physics.NewWorld()
	world.AddBody(&physics.Body{
		Node:        boat,
		Orientation: mgl64.QuatIdent(),
		Mass:        1,
		Radius:      1,
	})
	return graph, world
}

func TestNewGameRequiresTrackedNode(t *testing.T) {
	world := physics.NewWorld()
	if _, err := NewGame(scene.NewGraph(), world, NewMockClock(), zerolog.Nop()); err == nil {
		t.Fatal("expected error for scene without a tracked node")
	}
}

func TestNewGameRequiresTrackedBody(t *testing.T) {
	graph := scene.NewGraph()
	graph.Add(scene.InvalidNode, scene.Node{Name: "boat", Role: scene.RoleTracked})

	if _, err := NewGame(graph, physics.NewWorld(), NewMockClock(), zerolog.Nop()); err == nil {
		t.Fatal("expected error for tracked node without a physics body")
	}
}

func TestNewGameDefaultsClock(t *testing.T) {
	graph, world := newTrackedScene(t)
	g, err := NewGame(graph, world, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Clock == nil {
		t.Fatal("nil clock must default to the real time provider")
	}
}

func TestUpdateInvokesZoneCallback(t *testing.T) {
	graph, world := newTrackedScene(t)
	zone := graph.Add(scene.InvalidNode, scene.Node{Name: "gate-1", Role: scene.RoleZone})

	g, err := NewGame(graph, world, NewMockClock(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	var gotZone scene.NodeID = scene.InvalidNode
	var gotName string
	g.SetZoneEnteredFunc(func(z scene.NodeID, name string) {
		gotZone, gotName = z, name
	})

	g.Queue.Push(event.GameEvent{
		Type:    event.EventZoneEntered,
		Payload: &event.ZoneEnteredPayload{Zone: zone, Name: "gate-1"},
	})
	g.Update()

	if gotZone != zone || gotName != "gate-1" {
		t.Errorf("callback got (%v, %q), expected (%v, %q)", gotZone, gotName, zone, "gate-1")
	}
}

func TestDispatchReachesSubscribersOnly(t *testing.T) {
	graph, world := newTrackedScene(t)
	g, err := NewGame(graph, world, NewMockClock(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	var trace []string
	sub := &stubSystem{name: "sub", types: []event.EventType{event.EventSoundRequest}, trace: &trace}
	other := &stubSystem{name: "other", types: []event.EventType{event.EventGameReset}, trace: &trace}
	g.AddSystem(sub)
	g.AddSystem(other)

	g.Queue.Push(event.GameEvent{Type: event.EventSoundRequest})
	g.Update()

	want := 0
	for _, s := range trace {
		if s == "event:sub" {
			want++
		}
		if s == "event:other" {
			t.Error("unsubscribed system received the event")
		}
	}
	if want != 1 {
		t.Errorf("subscriber received %d deliveries, expected 1", want)
	}
}

func TestSystemsUpdateInPriorityOrder(t *testing.T) {
	graph, world := newTrackedScene(t)
	g, err := NewGame(graph, world, NewMockClock(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	var trace []string
	// Registered out of order on purpose
	g.AddSystem(&stubSystem{name: "late", priority: 30, trace: &trace})
	g.AddSystem(&stubSystem{name: "early", priority: 10, trace: &trace})
	g.AddSystem(&stubSystem{name: "mid", priority: 20, trace: &trace})

	g.Queue.Push(event.GameEvent{Type: event.EventGameReset})
	g.Update()

	// All queued events dispatch before any system's frame update runs
	want := []string{"update:early", "update:mid", "update:late"}
	var updates []string
	for _, s := range trace {
		if len(s) > 7 && s[:7] == "update:" {
			updates = append(updates, s)
		}
	}
	if len(updates) != len(want) {
		t.Fatalf("updates = %v, expected %v", updates, want)
	}
	for i := range want {
		if updates[i] != want[i] {
			t.Fatalf("update order = %v, expected %v", updates, want)
		}
	}
}

func TestFrameCounterAdvances(t *testing.T) {
	graph, world := newTrackedScene(t)
	g, err := NewGame(graph, world, NewMockClock(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		g.Update()
	}
	if g.Frame() != 3 {
		t.Errorf("frame = %d, expected 3", g.Frame())
	}
}
