package proxyui

import (
	"github.com/yohamta/donburi"
)

// buildAssociations consumes every pending ProxyUI declaration and turns the
// valid ones into associations.
func (p *Plugin) buildAssociations(world donburi.World) {
	var pending []donburi.Entity
	ProxyUIComponent.Each(world, func(entry *donburi.Entry) {
		pending = append(pending, entry.Entity())
	})

	for _, e := range pending {
		entry := world.Entry(e)
		decl := ProxyUIComponent.GetValue(entry)
		// A proxy is a UI node whatever the outcome, and a donburi entity
		// cannot be left without components once the declaration goes.
		if !entry.HasComponent(UINodeComponent) {
			addUIBundle(entry)
		}
		// Consumed exactly once, whatever the outcome.
		entry.RemoveComponent(ProxyUIComponent)
		p.associate(world, entry, decl.Target())
	}
}

func (p *Plugin) associate(world donburi.World, proxy *donburi.Entry, target donburi.Entity) {
	pair := Pair{Target: target, Proxy: proxy.Entity()}

	if err := p.validate(world, pair); err != nil {
		p.reject(pair, err)
		return
	}

	p.log.Debug("associating proxy target", "proxy", pair.Proxy)
	targetEntry := world.Entry(target)
	setComponent(targetEntry, ProxiedComponent, Proxied{proxy: pair.Proxy})
	setComponent(proxy, ProxyTargetComponent, ProxyTarget{target: target})
	p.log.Debug("associated proxy target", "proxy", pair.Proxy, "target", pair.Target)

	if targetEntry.HasComponent(UINodeComponent) {
		p.detachMarkers(world, pair)
		p.reject(pair, ErrTargetHasUINode)
		return
	}

	for _, stale := range p.registry.Register(pair.Target, pair.Proxy) {
		if stale == pair {
			continue
		}
		p.log.Warn("proxy target was already proxied, replacing previous proxy",
			"target", stale.Target, "previous_proxy", stale.Proxy, "proxy", pair.Proxy)
		p.detachMarkers(world, stale)
		p.events.EmitEvent(ProxyEvent{Kind: EventDetached, Proxy: stale.Proxy, Target: stale.Target})
	}
	p.events.EmitEvent(ProxyEvent{Kind: EventAssociated, Proxy: pair.Proxy, Target: pair.Target})
}

// validate checks a declaration against the registry and the world. It
// mutates nothing.
func (p *Plugin) validate(world donburi.World, pair Pair) error {
	if current, ok := p.registry.TargetOf(pair.Proxy); ok {
		if current != pair.Target {
			return ErrMultipleProxyUIPerEntity
		}
		return ErrDuplicateProxyUI
	}
	if !world.Valid(pair.Target) {
		return ErrTargetNotFound
	}
	return nil
}

func (p *Plugin) reject(pair Pair, err error) {
	p.log.Warn("proxy declaration rejected",
		"proxy", pair.Proxy, "target", pair.Target, "err", err)
	p.events.EmitEvent(ProxyEvent{Kind: EventRejected, Proxy: pair.Proxy, Target: pair.Target, Err: err})
}
