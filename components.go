package proxyui

import (
	"github.com/yohamta/donburi"
)

// ProxyUI is the declaration a caller attaches to a UI entity to request that
// it proxy Target. The builder consumes it on the next tick.
type ProxyUI struct {
	target donburi.Entity
}

// Proxy returns a declaration asking for the entity it is attached to to
// proxy target.
func Proxy(target donburi.Entity) ProxyUI {
	return ProxyUI{target: target}
}

// Target returns the entity the declaration asks to proxy.
func (p ProxyUI) Target() donburi.Entity {
	return p.target
}

// Proxied marks a target entity and refers back to its proxy UI entity.
type Proxied struct {
	proxy donburi.Entity
}

// ProxyEntity returns the UI entity standing in for this target.
func (p Proxied) ProxyEntity() donburi.Entity {
	return p.proxy
}

// ProxyTarget marks a proxy UI entity and refers to the entity it proxies.
type ProxyTarget struct {
	target donburi.Entity
}

// TargetEntity returns the scene entity this proxy stands in for.
func (p ProxyTarget) TargetEntity() donburi.Entity {
	return p.target
}

// UINode is the computed layout of a UI element, filled in by the layout
// engine. Its presence is what makes an entity a UI element.
type UINode struct {
	// Size is the computed logical size in UI pixels.
	Size Vec2
}

// LogicalRect returns the node's rect in UI space: Size centered on the
// translation of the node's global transform.
func (n UINode) LogicalRect(global GlobalTransform) Rect {
	return RectFromCenterSize(global.Translation(), n.Size)
}

// Parent links an entity to the entity whose transform it inherits.
type Parent struct {
	Entity donburi.Entity
}

// Window describes a window's logical size.
type Window struct {
	Width, Height float64
}

// Size returns the window size as a vector.
func (w Window) Size() Vec2 {
	return Vec2{w.Width, w.Height}
}

// UIScale is a world-wide multiplier applied to UI sizes.
type UIScale struct {
	Scale float64
}

var (
	ProxyUIComponent     = donburi.NewComponentType[ProxyUI]()
	ProxiedComponent     = donburi.NewComponentType[Proxied]()
	ProxyTargetComponent = donburi.NewComponentType[ProxyTarget]()
	NodeStateComponent   = donburi.NewComponentType[NodeState]()

	UINodeComponent          = donburi.NewComponentType[UINode]()
	StyleComponent           = donburi.NewComponentType[Style]()
	TransformComponent       = donburi.NewComponentType[Transform](NewTransform(0, 0))
	GlobalTransformComponent = donburi.NewComponentType[GlobalTransform](GlobalTransform{Affine: IdentityAffine})
	ParentComponent          = donburi.NewComponentType[Parent]()
	VisibilityComponent      = donburi.NewComponentType[Visibility]()
	ViewVisibilityComponent  = donburi.NewComponentType[ViewVisibility](ViewVisibility{Visible: true})

	CameraComponent       = donburi.NewComponentType[Camera](Camera{Active: true})
	ProjectionComponent   = donburi.NewComponentType[OrthographicProjection](NewOrthographicProjection())
	CameraFollowComponent = donburi.NewComponentType[CameraFollow]()
	CameraScrollComponent = donburi.NewComponentType[CameraScroll]()

	WindowComponent  = donburi.NewComponentType[Window]()
	PrimaryWindowTag = donburi.NewTag()
	UIScaleComponent = donburi.NewComponentType[UIScale](UIScale{Scale: 1})
)

// Declare attaches a proxy declaration for target to the UI entity in entry.
func Declare(entry *donburi.Entry, target donburi.Entity) {
	setComponent(entry, ProxyUIComponent, Proxy(target))
}

// setComponent writes v into entry, adding the component if it is missing.
func setComponent[T any](entry *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if entry.HasComponent(c) {
		c.SetValue(entry, v)
		return
	}
	donburi.Add(entry, c, &v)
}

// removeComponent drops c from entry if present.
func removeComponent[T any](entry *donburi.Entry, c *donburi.ComponentType[T]) {
	if entry.HasComponent(c) {
		entry.RemoveComponent(c)
	}
}

// addUIBundle gives entry the components every UI node carries, keeping any
// that are already present.
func addUIBundle(entry *donburi.Entry) {
	if !entry.HasComponent(UINodeComponent) {
		setComponent(entry, UINodeComponent, UINode{})
	}
	if !entry.HasComponent(StyleComponent) {
		setComponent(entry, StyleComponent, Style{})
	}
	if !entry.HasComponent(TransformComponent) {
		setComponent(entry, TransformComponent, NewTransform(0, 0))
	}
	if !entry.HasComponent(GlobalTransformComponent) {
		setComponent(entry, GlobalTransformComponent, GlobalTransform{Affine: IdentityAffine})
	}
	if !entry.HasComponent(VisibilityComponent) {
		setComponent(entry, VisibilityComponent, VisibilityInherited)
	}
	if !entry.HasComponent(ViewVisibilityComponent) {
		setComponent(entry, ViewVisibilityComponent, ViewVisibility{Visible: true})
	}
}

// SpawnUINode creates a UI entity with the default UI bundle plus any extra
// components.
func SpawnUINode(world donburi.World, node UINode, style Style) *donburi.Entry {
	entry := world.Entry(world.Create(UINodeComponent, StyleComponent))
	UINodeComponent.SetValue(entry, node)
	StyleComponent.SetValue(entry, style)
	addUIBundle(entry)
	return entry
}

// SpawnPrimaryWindow creates the primary window entity.
func SpawnPrimaryWindow(world donburi.World, width, height float64) *donburi.Entry {
	entry := world.Entry(world.Create(WindowComponent, PrimaryWindowTag))
	WindowComponent.SetValue(entry, Window{Width: width, Height: height})
	return entry
}

// SetUIScale sets the world-wide UI scale, creating the singleton if needed.
func SetUIScale(world donburi.World, scale float64) {
	if entry, ok := UIScaleComponent.First(world); ok {
		UIScaleComponent.SetValue(entry, UIScale{Scale: scale})
		return
	}
	entry := world.Entry(world.Create(UIScaleComponent))
	UIScaleComponent.SetValue(entry, UIScale{Scale: scale})
}
