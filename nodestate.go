package proxyui

// NodeState is an immutable snapshot of a proxy UI node at one tick. The
// sync pass writes an independent copy to both the proxy and its target
// whenever the snapshot changes, so each side can diff against its own
// previous value.
type NodeState struct {
	uiRect          Rect
	worldRect       Rect
	globalTransform GlobalTransform
	transform       Transform
	style           Style
	uiScale         float64
	visibility      Visibility
	viewVisibility  ViewVisibility
}

// UIRect returns the node's rect in UI space.
func (s NodeState) UIRect() Rect { return s.uiRect }

// WorldRect returns the node's rect mapped into world space. It is the zero
// rect when no primary window or active camera was available.
func (s NodeState) WorldRect() Rect { return s.worldRect }

// GlobalTransform returns the proxy's global transform.
func (s NodeState) GlobalTransform() GlobalTransform { return s.globalTransform }

// Transform returns the proxy's local transform.
func (s NodeState) Transform() Transform { return s.transform }

// Style returns the proxy's style.
func (s NodeState) Style() Style { return s.style }

// UIScale returns the UI scale in effect.
func (s NodeState) UIScale() float64 { return s.uiScale }

// Visibility returns the proxy's own visibility setting.
func (s NodeState) Visibility() Visibility { return s.visibility }

// ViewVisibility returns the proxy's resolved visibility.
func (s NodeState) ViewVisibility() ViewVisibility { return s.viewVisibility }

// ComputedVisibility returns the resolved visibility as a Visibility, for
// copying onto a proxy target. Copying the proxy's own Visibility would not
// work when it is VisibilityInherited.
func (s NodeState) ComputedVisibility() Visibility {
	if s.viewVisibility.Visible {
		return VisibilityVisible
	}
	return VisibilityHidden
}

// Changed reports whether next differs from s in any field.
func (s NodeState) Changed(next NodeState) bool {
	return s != next
}
