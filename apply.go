package proxyui

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var proxiedTargetQuery = donburi.NewQuery(filter.Contains(ProxiedComponent, NodeStateComponent, TransformComponent))

// applyToTargets moves each proxied target to the centre of its snapshot's
// world rect and copies the computed visibility, once per new snapshot.
// Targets whose snapshot has an empty world rect keep their position.
// Parented targets are positioned in their parent's space.
func (p *Plugin) applyToTargets(world donburi.World) {
	seen := make(map[donburi.Entity]struct{})
	var targets []donburi.Entity
	proxiedTargetQuery.Each(world, func(entry *donburi.Entry) {
		targets = append(targets, entry.Entity())
	})

	for _, e := range targets {
		seen[e] = struct{}{}
		entry := world.Entry(e)
		state := NodeStateComponent.GetValue(entry)
		if last, ok := p.applied[e]; ok && !last.Changed(state) {
			continue
		}
		p.applied[e] = state

		if wr := state.WorldRect(); wr != (Rect{}) {
			c := wr.Center()
			x, y := parentGlobal(world, entry).Invert().Apply(c.X, c.Y)
			t := TransformComponent.Get(entry)
			t.X, t.Y = x, y
		}
		setComponent(entry, VisibilityComponent, state.ComputedVisibility())
	}

	for e := range p.applied {
		if _, ok := seen[e]; !ok {
			delete(p.applied, e)
		}
	}
}

// parentGlobal returns the global transform of entry's parent, or the
// identity for unparented entities.
func parentGlobal(world donburi.World, entry *donburi.Entry) Affine {
	if !entry.HasComponent(ParentComponent) {
		return IdentityAffine
	}
	parent := ParentComponent.GetValue(entry).Entity
	if !world.Valid(parent) {
		return IdentityAffine
	}
	pe := world.Entry(parent)
	if !pe.HasComponent(GlobalTransformComponent) {
		return IdentityAffine
	}
	return GlobalTransformComponent.GetValue(pe).Affine
}
