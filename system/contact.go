package system

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/paddle-rush/event"
	"github.com/lixenwraith/paddle-rush/physics"
	"github.com/lixenwraith/paddle-rush/scene"
)

// ContactBridge classifies physics contacts and forwards qualifying ones to
// game logic through the event queue.
// HandleContactBegin runs synchronously on the physics schedule and must only
// enqueue, the UI schedule drains and applies. Stateless per event.
// Repeated begin events are not deduplicated here, consumers stay idempotent
type ContactBridge struct {
	graph *scene.Graph
	queue *event.EventQueue
	log   zerolog.Logger
}

func NewContactBridge(graph *scene.Graph, queue *event.EventQueue, log zerolog.Logger) *ContactBridge {
	return &ContactBridge{
		graph: graph,
		queue: queue,
		log:   log,
	}
}

// HandleContactBegin qualifies a contact pair and dispatches one event for it
// Pairs outside (Body, InteractiveZone) in either order are ignored, the
// physics world may report contacts irrelevant to game logic
func (b *ContactBridge) HandleContactBegin(x, y *physics.Body) {
	var zoneSide *physics.Body
	switch {
	case x.Category == scene.CategoryBody && y.Category == scene.CategoryZone:
		zoneSide = y
	case x.Category == scene.CategoryZone && y.Category == scene.CategoryBody:
		zoneSide = x
	default:
		return
	}

	// The collidable geometry may sit levels below its logical container
	zone, ok := b.graph.ResolveZone(zoneSide.Node)
	if !ok {
		b.log.Debug().Int32("node", int32(zoneSide.Node)).Msg("contact zone container unresolved, event dropped")
		return
	}

	b.queue.Push(event.GameEvent{
		Type: event.EventZoneEntered,
		Payload: &event.ZoneEnteredPayload{
			Zone: zone,
			Name: b.graph.Node(zone).Name,
		},
	})
}
