package proxyui

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Config controls which passes a Plugin runs and where it reports.
type Config struct {
	// Logger receives diagnostics. Nil uses the package logger (see SetLogger).
	Logger *slog.Logger
	// Events receives lifecycle events. Nil discards them.
	Events EventSink
	// ManageCameras runs the camera pass: follow, scroll tweens, and
	// resizing window-scaled projections to the primary window.
	ManageCameras bool
	// ManageTransforms runs the transform pass, recomputing GlobalTransform
	// from Transform and Parent.
	ManageTransforms bool
	// ApplyToTargets moves each target to the centre of its proxy's world
	// rect and copies the computed visibility whenever a snapshot changes.
	ApplyToTargets bool
}

// Pass is one named step of a tick.
type Pass struct {
	Name string
	Run  func(world donburi.World)
}

// Plugin keeps proxy targets in sync with their proxy UI nodes. It owns the
// association registry; create one per world.
type Plugin struct {
	log      *slog.Logger
	events   EventSink
	registry *Registry
	passes   []Pass

	// globalsManaged is set when a pass keeps GlobalTransform current.
	globalsManaged bool

	// applied holds the last snapshot applied to each target.
	applied map[donburi.Entity]NodeState
}

// New creates a plugin with an empty registry.
func New(cfg Config) *Plugin {
	p := &Plugin{
		log:      cfg.Logger,
		events:   cfg.Events,
		registry: NewRegistry(),
		applied:  make(map[donburi.Entity]NodeState),

		globalsManaged: cfg.ManageCameras || cfg.ManageTransforms,
	}
	if p.log == nil {
		p.log = Logger()
	}
	if p.events == nil {
		p.events = nopSink{}
	}

	if cfg.ManageCameras {
		p.passes = append(p.passes, Pass{Name: "cameras", Run: func(w donburi.World) {
			p.updateCameras(w, float32(1.0/float64(ebiten.TPS())))
		}})
	}
	if cfg.ManageTransforms {
		p.passes = append(p.passes, Pass{Name: "transforms", Run: p.propagateTransforms})
	}
	// The builder must run before sync in the same tick.
	p.passes = append(p.passes,
		Pass{Name: "associations", Run: p.buildAssociations},
		Pass{Name: "sync", Run: p.syncNodes},
	)
	if cfg.ApplyToTargets {
		p.passes = append(p.passes, Pass{Name: "apply", Run: p.applyToTargets})
	}
	return p
}

// Registry returns the plugin's association registry. Callers must not
// mutate it.
func (p *Plugin) Registry() *Registry {
	return p.registry
}

// Passes returns the plugin's passes in execution order.
func (p *Plugin) Passes() []Pass {
	return p.passes
}

// Update runs one tick: every pass, in order, to completion.
func (p *Plugin) Update(world donburi.World) {
	if p.debugEnabled() {
		p.debugLog(p.updateWithStats(world))
		return
	}
	for _, pass := range p.passes {
		pass.Run(world)
	}
}

// Build installs the plugin as a system on e, so e.Update() runs one tick
// with the passes in order.
func (p *Plugin) Build(e *ecs.ECS) *ecs.ECS {
	e.AddSystem(func(e *ecs.ECS) {
		p.Update(e.World)
	})
	return e
}

// Unproxy tears down the association that entity takes part in, from either
// side. It reports whether an association existed.
func (p *Plugin) Unproxy(world donburi.World, entity donburi.Entity) bool {
	pair, ok := p.registry.RemoveByProxy(entity)
	if !ok {
		pair, ok = p.registry.RemoveByTarget(entity)
	}
	if !ok {
		return false
	}
	p.detachMarkers(world, pair)
	p.log.Debug("proxy association removed", "proxy", pair.Proxy, "target", pair.Target)
	p.events.EmitEvent(ProxyEvent{Kind: EventDetached, Proxy: pair.Proxy, Target: pair.Target})
	return true
}

// teardown removes an association after an invariant violation.
func (p *Plugin) teardown(world donburi.World, pair Pair, reason error) {
	p.detachMarkers(world, pair)
	if target, ok := p.registry.TargetOf(pair.Proxy); ok && target == pair.Target {
		p.registry.RemoveByProxy(pair.Proxy)
	}
	p.events.EmitEvent(ProxyEvent{Kind: EventDetached, Proxy: pair.Proxy, Target: pair.Target, Err: reason})
}

// detachMarkers removes both markers, tolerating entities that are gone or
// markers that already point elsewhere.
func (p *Plugin) detachMarkers(world donburi.World, pair Pair) {
	if world.Valid(pair.Proxy) {
		entry := world.Entry(pair.Proxy)
		if entry.HasComponent(ProxyTargetComponent) &&
			ProxyTargetComponent.GetValue(entry).TargetEntity() == pair.Target {
			entry.RemoveComponent(ProxyTargetComponent)
		}
	}
	if world.Valid(pair.Target) {
		entry := world.Entry(pair.Target)
		if entry.HasComponent(ProxiedComponent) &&
			ProxiedComponent.GetValue(entry).ProxyEntity() == pair.Proxy {
			entry.RemoveComponent(ProxiedComponent)
		}
	}
}
