// Package proxyui keeps scene objects framed by UI panels.
//
// A UI element (an entity with a [UINode]) can act as a proxy for a plain
// scene entity, its target. Every tick the proxy's on-screen rectangle is
// mapped into world space through the active camera and captured, together
// with its transforms, style, UI scale and visibility, in an immutable
// [NodeState] snapshot. Snapshots are written to both proxy and target only
// when something changed, so renderers reading them can skip redundant work.
//
// The host runtime is a [Donburi] world.
//
// # Quick start
//
//	world := donburi.NewWorld()
//	plugin := proxyui.New(proxyui.Config{ManageCameras: true, ManageTransforms: true})
//
//	proxyui.SpawnPrimaryWindow(world, 800, 600)
//	proxyui.SpawnCamera(world)
//
//	target := world.Create(proxyui.TransformComponent, proxyui.GlobalTransformComponent)
//	panel := proxyui.SpawnUINode(world, proxyui.UINode{Size: proxyui.Vec2{X: 200, Y: 100}}, proxyui.Style{})
//	proxyui.Declare(panel, target)
//
//	plugin.Update(world) // or plugin.Build(ecs.NewECS(world)) and ecs.Update()
//
// After the tick, both entities carry a [NodeState], the target carries a
// [Proxied] marker and the panel a [ProxyTarget] marker.
//
// # Associations
//
// A declaration is consumed by the next tick whatever its outcome. It is
// rejected when the proxy already stands in for a target, when the target is
// gone, or when the target is itself a UI node. An association that later
// breaks (target despawned, target gained a UI node) is torn down: both
// markers and the registry entry are removed. Rejections and teardowns are
// logged and reported through [EventSink]; they never fail a tick.
//
// # Ebitengine
//
// [Run] and [NewGame] drive a world with [Ebitengine], keeping the primary
// [Window] sized to the ebiten window.
//
// [Donburi]: https://github.com/yohamta/donburi
// [Ebitengine]: https://ebitengine.org
package proxyui
