package proxyui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. Each capture writes a PNG plus a JSON manifest
// of the proxy associations on screen, both named after the tick.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// ManifestEntry records one association as it was when a screenshot was
// taken, so visual diffs can be checked against the mapped rects.
type ManifestEntry struct {
	Target    donburi.Entity `json:"target"`
	Proxy     donburi.Entity `json:"proxy"`
	UIRect    Rect           `json:"ui_rect"`
	WorldRect Rect           `json:"world_rect"`
	Visible   bool           `json:"visible"`
}

// Manifest is the sidecar written next to each screenshot.
type Manifest struct {
	Label   string          `json:"label"`
	Tick    uint64          `json:"tick"`
	Window  Window          `json:"window"`
	Entries []ManifestEntry `json:"entries"`
}

// manifest snapshots the registry against the targets' last NodeState.
// Associations that have not synced yet are left out.
func (g *Game) manifest(label string) Manifest {
	world := g.ecs.World
	m := Manifest{Label: label, Tick: g.tick, Entries: []ManifestEntry{}}
	if w, ok := primaryWindow(world); ok {
		m.Window = w
	}
	for _, pair := range g.plugin.Registry().Pairs() {
		if !world.Valid(pair.Target) {
			continue
		}
		target := world.Entry(pair.Target)
		if !target.HasComponent(NodeStateComponent) {
			continue
		}
		state := NodeStateComponent.GetValue(target)
		m.Entries = append(m.Entries, ManifestEntry{
			Target:    pair.Target,
			Proxy:     pair.Proxy,
			UIRect:    state.UIRect(),
			WorldRect: state.WorldRect(),
			Visible:   state.ComputedVisibility() != VisibilityHidden,
		})
	}
	return m
}

// screenshotBase returns the path, minus extension, for a capture.
func (g *Game) screenshotBase(stamp, label string) string {
	return filepath.Join(g.cfg.ScreenshotDir, fmt.Sprintf("%s_t%06d_%s", stamp, g.tick, sanitizeLabel(label)))
}

// flushScreenshots writes every queued capture of the rendered frame.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", g.cfg.ScreenshotDir, "err", err)
		return
	}

	bounds := screen.Bounds()
	pixels := make([]byte, 4*bounds.Dx()*bounds.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, bounds.Dx(), bounds.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		base := g.screenshotBase(stamp, label)
		if err := writePNG(base+".png", img); err != nil {
			Logger().Warn("screenshot failed", "label", label, "err", err)
			continue
		}
		if err := writeManifest(base+".json", g.manifest(label)); err != nil {
			Logger().Warn("screenshot manifest failed", "label", label, "err", err)
		}
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, gr, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			gr = uint8(min(int(gr)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, gr, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps letters, digits, '-' and '.', replacing anything else
// with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
