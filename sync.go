package proxyui

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var proxyNodeQuery = donburi.NewQuery(filter.Contains(
	ProxyTargetComponent,
	UINodeComponent,
	StyleComponent,
	TransformComponent,
	GlobalTransformComponent,
))

// view is what the sync pass needs to map UI rects into world space.
// ok is false in degraded mode.
type view struct {
	window     Vec2
	camera     Mat4
	projection Projection
	ok         bool
}

func (p *Plugin) currentView(world donburi.World) view {
	window, ok := primaryWindow(world)
	if !ok {
		p.log.Warn("failed to get primary window, world rects will be empty")
		return view{}
	}
	cam, ok := activeCamera(world)
	if !ok {
		return view{}
	}
	proj := ProjectionComponent.GetValue(cam)
	if proj.Area.IsEmpty() {
		p.log.Warn("active camera projection area is empty, world rects are in NDC units",
			"camera", cam.Entity())
	}
	return view{
		window:     window.Size(),
		camera:     cameraMatrix(cam, p.globalsManaged),
		projection: proj,
		ok:         true,
	}
}

// syncNodes snapshots every associated proxy UI node and propagates changed
// snapshots to both sides of the association. Broken associations are torn
// down.
func (p *Plugin) syncNodes(world donburi.World) {
	var proxies []donburi.Entity
	proxyNodeQuery.Each(world, func(entry *donburi.Entry) {
		proxies = append(proxies, entry.Entity())
	})
	if len(proxies) == 0 {
		return
	}

	v := p.currentView(world)
	scale := uiScale(world)

	for _, e := range proxies {
		p.syncNode(world, world.Entry(e), v, scale)
	}
}

func (p *Plugin) syncNode(world donburi.World, proxy *donburi.Entry, v view, scale float64) {
	global := GlobalTransformComponent.GetValue(proxy)
	uiRect := UINodeComponent.GetValue(proxy).LogicalRect(global)

	var worldRect Rect
	if v.ok {
		worldRect = uiRectToWorld(uiRect, v.window, v.camera, v.projection)
	}

	next := NodeState{
		uiRect:          uiRect,
		worldRect:       worldRect,
		globalTransform: global,
		transform:       TransformComponent.GetValue(proxy),
		style:           StyleComponent.GetValue(proxy),
		uiScale:         scale,
		visibility:      VisibilityInherited,
		viewVisibility:  ViewVisibility{Visible: true},
	}
	if proxy.HasComponent(VisibilityComponent) {
		next.visibility = VisibilityComponent.GetValue(proxy)
	}
	if proxy.HasComponent(ViewVisibilityComponent) {
		next.viewVisibility = ViewVisibilityComponent.GetValue(proxy)
	}

	changed := true
	if proxy.HasComponent(NodeStateComponent) {
		changed = NodeStateComponent.GetValue(proxy).Changed(next)
	}

	pair := Pair{Target: ProxyTargetComponent.GetValue(proxy).TargetEntity(), Proxy: proxy.Entity()}
	if err := p.checkTarget(world, pair); err != nil {
		p.log.Warn("proxy association broken, removing proxy",
			"proxy", pair.Proxy, "target", pair.Target, "err", err)
		p.teardown(world, pair, err)
		return
	}
	if !changed {
		return
	}

	if p.log.Enabled(context.Background(), slog.LevelDebug) {
		p.log.Debug("proxy ui node state updated", "proxy", pair.Proxy, "state", spew.Sdump(next))
	}
	setComponent(proxy, NodeStateComponent, next)
	setComponent(world.Entry(pair.Target), NodeStateComponent, next)
	p.events.EmitEvent(ProxyEvent{Kind: EventStateChanged, Proxy: pair.Proxy, Target: pair.Target, State: next})
}

// checkTarget verifies the target side of an association still holds.
func (p *Plugin) checkTarget(world donburi.World, pair Pair) error {
	if !world.Valid(pair.Target) {
		return ErrTargetNotFound
	}
	target := world.Entry(pair.Target)
	if !target.HasComponent(ProxiedComponent) ||
		ProxiedComponent.GetValue(target).ProxyEntity() != pair.Proxy {
		return ErrBrokenAssociation
	}
	if target.HasComponent(UINodeComponent) {
		return ErrTargetHasUINode
	}
	return nil
}
