package engine

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/constant"
	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
)

// System is a game subsystem driven by the per-frame update loop
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)
}

// ZoneEnteredFunc is the game-logic callback for qualifying contacts
// Always invoked from the goroutine calling Update, never the physics schedule
type ZoneEnteredFunc func(zone scene.NodeID, name string)

// Game wires the scene graph, physics world, event queue and systems together
// and exposes the single per-frame Update entry point
type Game struct {
	Graph *scene.Graph
	World *physics.World
	Queue *event.EventQueue
	Clock Clock

	Tracked scene.NodeID

	log       zerolog.Logger
	systems   []System
	handlers  map[event.EventType][]System
	scheduler *StepScheduler

	onZoneEntered ZoneEnteredFunc

	frame   int64
	scratch []event.GameEvent
}

// NewGame validates structural prerequisites and builds the game context
// A missing tracked body is fatal here, per-event failures later are not
func NewGame(graph *scene.Graph, world *physics.World, clock Clock, log zerolog.Logger) (*Game, error) {
	tracked, ok := graph.FindRole(scene.RoleTracked)
	if !ok {
		return nil, fmt.Errorf("scene has no tracked body node")
	}
	if world.Body(tracked) == nil {
		return nil, fmt.Errorf("tracked node %q has no physics body", graph.Node(tracked).Name)
	}
	if clock == nil {
		clock = NewTimeProvider()
	}

	return &Game{
		Graph:     graph,
		World:     world,
		Queue:     event.NewEventQueue(),
		Clock:     clock,
		Tracked:   tracked,
		log:       log,
		handlers:  make(map[event.EventType][]System),
		scheduler: NewStepScheduler(world, constant.PhysicsTickInterval),
		scratch:   make([]event.GameEvent, 0, constant.EventQueueSize),
	}, nil
}

// AddSystem registers a system and indexes its event subscriptions
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
	for _, t := range s.EventTypes() {
		g.handlers[t] = append(g.handlers[t], s)
	}
}

// SetZoneEnteredFunc installs the game-logic contact callback
func (g *Game) SetZoneEnteredFunc(fn ZoneEnteredFunc) {
	g.onZoneEntered = fn
}

// Frame returns the current frame counter, safe only on the update goroutine
func (g *Game) Frame() int64 {
	return g.frame
}

// Start launches the physics stepping schedule
func (g *Game) Start() {
	g.scheduler.Start()
}

// Stop halts the physics stepping schedule
func (g *Game) Stop() {
	g.scheduler.Stop()
}

// Scheduler exposes the physics step scheduler for diagnostics
func (g *Game) Scheduler() *StepScheduler {
	return g.scheduler
}

// Update is the per-frame entry point, invoked exactly once per rendered frame
// It drains the event queue onto this schedule and runs the frame systems.
// Paddle activation never happens here, it is driven by input edges and timers
func (g *Game) Update() {
	g.frame++

	g.scratch = g.Queue.ConsumeInto(g.scratch[:0])
	for i := range g.scratch {
		g.dispatch(g.scratch[i])
	}

	for _, s := range g.systems {
		s.Update()
	}
}

func (g *Game) dispatch(ev event.GameEvent) {
	if ev.Type == event.EventZoneEntered && g.onZoneEntered != nil {
		if p, ok := ev.Payload.(*event.ZoneEnteredPayload); ok {
			g.onZoneEntered(p.Zone, p.Name)
		}
	}
	for _, s := range g.handlers[ev.Type] {
		s.HandleEvent(ev)
	}
}
