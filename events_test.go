package proxyui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiSinkQueuesUntilProcessed(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []ProxyEvent
	ProxyEventType.Subscribe(world, func(w donburi.World, e ProxyEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(ProxyEvent{Kind: EventAssociated})
	sink.EmitEvent(ProxyEvent{Kind: EventRejected, Err: ErrDuplicateProxyUI})
	assert.Empty(t, received, "events are queued until processed")

	ProxyEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, EventAssociated, received[0].Kind)
	assert.Equal(t, EventRejected, received[1].Kind)
	assert.ErrorIs(t, received[1].Err, ErrDuplicateProxyUI)
}

func TestDonburiSinkMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ProxyEventType.Subscribe(world, func(w donburi.World, e ProxyEvent) { count1++ })
	ProxyEventType.Subscribe(world, func(w donburi.World, e ProxyEvent) { count2++ })

	sink.EmitEvent(ProxyEvent{Kind: EventStateChanged})
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestPluginPublishesToWorld(t *testing.T) {
	world := donburi.NewWorld()
	SpawnPrimaryWindow(world, 800, 600)
	ProjectionComponent.Get(SpawnCamera(world)).Update(800, 600)
	p := New(Config{Events: NewDonburiSink(world)})

	var kinds []EventKind
	ProxyEventType.Subscribe(world, func(w donburi.World, e ProxyEvent) {
		kinds = append(kinds, e.Kind)
	})

	target := world.Create(TransformComponent)
	panel := SpawnUINode(world, UINode{Size: Vec2{100, 100}}, Style{})
	Declare(panel, target)
	p.Update(world)
	p.Unproxy(world, target)
	ProxyEventType.ProcessEvents(world)

	assert.Equal(t, []EventKind{EventAssociated, EventStateChanged, EventDetached}, kinds)
}

func TestNilEventsAreDiscarded(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	panel := SpawnUINode(world, UINode{}, Style{})
	Declare(panel, panel.Entity())
	assert.NotPanics(t, func() { p.Update(world) })
}
