package proxyui

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventKind identifies a proxy lifecycle event.
type EventKind uint8

//go:generate go tool stringer -type=EventKind -trimprefix=Event

const (
	EventAssociated   EventKind = iota // a declaration became an association
	EventRejected                      // a declaration was discarded
	EventDetached                      // an association was torn down
	EventStateChanged                  // a new snapshot was written
)

// ProxyEvent describes one association transition.
type ProxyEvent struct {
	Kind   EventKind
	Proxy  donburi.Entity
	Target donburi.Entity
	// Err is set for EventRejected and for EventDetached caused by an
	// invariant violation. It is nil for an explicit Unproxy.
	Err error
	// State is set for EventStateChanged.
	State NodeState
}

// EventSink receives proxy lifecycle events.
type EventSink interface {
	EmitEvent(event ProxyEvent)
}

// ProxyEventType is the Donburi event type for proxy lifecycle events.
// Subscribe to it in ECS systems to react to associations coming and going.
var ProxyEventType = events.NewEventType[ProxyEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to ProxyEventType on
// world. Events are queued until ProcessEvents or events.ProcessAllEvents.
func NewDonburiSink(world donburi.World) EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event ProxyEvent) {
	ProxyEventType.Publish(s.world, event)
}

type nopSink struct{}

func (nopSink) EmitEvent(ProxyEvent) {}
