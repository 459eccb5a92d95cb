package proxyui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestGameScreenshotQueue(t *testing.T) {
	g := NewGame(donburi.NewWorld(), New(Config{}), RunConfig{Width: 640, Height: 480})
	g.Screenshot("a")
	g.Screenshot("b")
	assert.Equal(t, []string{"a", "b"}, g.screenshotQueue)
	assert.Equal(t, "screenshots", g.cfg.ScreenshotDir)
}

func TestScreenshotBaseNamedAfterTick(t *testing.T) {
	g := NewGame(donburi.NewWorld(), New(Config{}), RunConfig{ScreenshotDir: "shots"})
	g.tick = 42
	assert.Equal(t, filepath.Join("shots", "20260101_120000_t000042_after_scroll"),
		g.screenshotBase("20260101_120000", "after scroll"))
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pix[0:4])
	assert.Equal(t, []byte{127, 63, 0, 128}, img.Pix[4:8])
	assert.Equal(t, []byte{0, 0, 0, 0}, img.Pix[8:12])
}

func TestManifestListsSyncedAssociations(t *testing.T) {
	world := donburi.NewWorld()
	p := New(Config{})
	g := NewGame(world, p, RunConfig{Width: 800, Height: 600})
	ProjectionComponent.Get(SpawnCamera(world)).Update(800, 600)

	target := world.Create(TransformComponent, GlobalTransformComponent)
	panel := SpawnUINode(world, UINode{Size: Vec2{200, 100}}, Style{})
	TransformComponent.SetValue(panel, NewTransform(400, 300))
	GlobalTransformComponent.SetValue(panel, GlobalTransform{Affine: NewTransform(400, 300).Matrix()})
	Declare(panel, target)
	require.NoError(t, g.Update())

	// Declared but not yet synced: left out.
	Declare(SpawnUINode(world, UINode{}, Style{}), world.Create(TransformComponent))

	m := g.manifest("check")
	assert.Equal(t, "check", m.Label)
	assert.Equal(t, uint64(1), m.Tick)
	assert.Equal(t, Window{Width: 800, Height: 600}, m.Window)
	require.Len(t, m.Entries, 1)
	e := m.Entries[0]
	assert.Equal(t, target, e.Target)
	assert.Equal(t, panel.Entity(), e.Proxy)
	assert.Equal(t, Rect{Min: Vec2{300, 250}, Max: Vec2{500, 350}}, e.UIRect)
	assert.InDelta(t, 200, e.WorldRect.Width(), 1e-6)
	assert.True(t, e.Visible)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.json")
	want := Manifest{Label: "x", Tick: 7, Entries: []ManifestEntry{{UIRect: Rect{Max: Vec2{1, 2}}}}}
	require.NoError(t, writeManifest(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)
}
