package proxyui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleState() NodeState {
	return NodeState{
		uiRect:          Rect{Min: Vec2{300, 250}, Max: Vec2{500, 350}},
		worldRect:       Rect{Min: Vec2{-100, -50}, Max: Vec2{100, 50}},
		globalTransform: GlobalTransform{Affine: NewTransform(400, 300).Matrix()},
		transform:       NewTransform(400, 300),
		style:           Style{Width: Px(200), Height: Px(100)},
		uiScale:         1,
		visibility:      VisibilityInherited,
		viewVisibility:  ViewVisibility{Visible: true},
	}
}

func TestNodeStateChanged(t *testing.T) {
	base := sampleState()
	assert.False(t, base.Changed(sampleState()), "identical snapshots")

	mutations := map[string]func(s *NodeState){
		"ui rect":          func(s *NodeState) { s.uiRect.Max.X++ },
		"world rect":       func(s *NodeState) { s.worldRect.Min.Y-- },
		"global transform": func(s *NodeState) { s.globalTransform.Affine[4] = 401 },
		"transform":        func(s *NodeState) { s.transform.ScaleX = 2 },
		"style":            func(s *NodeState) { s.style.Display = DisplayNone },
		"ui scale":         func(s *NodeState) { s.uiScale = 1.5 },
		"visibility":       func(s *NodeState) { s.visibility = VisibilityHidden },
		"view visibility":  func(s *NodeState) { s.viewVisibility.Visible = false },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			next := sampleState()
			mutate(&next)
			assert.True(t, base.Changed(next))
			assert.True(t, next.Changed(base))
		})
	}
}

func TestNodeStateZeroValueDiffers(t *testing.T) {
	assert.True(t, NodeState{}.Changed(sampleState()))
}

func TestNodeStateComputedVisibility(t *testing.T) {
	s := sampleState()
	assert.Equal(t, VisibilityVisible, s.ComputedVisibility())

	// Hidden view visibility wins over the proxy's own setting.
	s.visibility = VisibilityVisible
	s.viewVisibility.Visible = false
	assert.Equal(t, VisibilityHidden, s.ComputedVisibility())
}

func TestNodeStateAccessors(t *testing.T) {
	s := sampleState()
	assert.Equal(t, s.uiRect, s.UIRect())
	assert.Equal(t, s.worldRect, s.WorldRect())
	assert.Equal(t, s.globalTransform, s.GlobalTransform())
	assert.Equal(t, s.transform, s.Transform())
	assert.Equal(t, s.style, s.Style())
	assert.Equal(t, 1.0, s.UIScale())
	assert.Equal(t, VisibilityInherited, s.Visibility())
	assert.True(t, s.ViewVisibility().Visible)
}
