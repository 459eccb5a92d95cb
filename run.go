package proxyui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	ClearColor    Color
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where Game.Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Update runs each tick before the plugin's passes, typically to lay
	// out UI nodes for the current window size.
	Update func(world donburi.World) error
	// Draw renders the world after the clear color is applied.
	Draw func(world donburi.World, screen *ebiten.Image)
}

// Game is an ebiten.Game that drives a donburi world with a Plugin and keeps
// the primary Window sized to the ebiten window.
type Game struct {
	ecs    *ecs.ECS
	plugin *Plugin
	cfg    RunConfig
	window donburi.Entity
	tick   uint64

	// size overrides the outside size in Layout when non-zero.
	size [2]int

	screenshotQueue []string
	testRunner      *TestRunner

	fpsImg     *ebiten.Image
	fpsElapsed float64
}

// NewGame wires plugin into a donburi ECS over world. A primary window is
// created unless world already has one.
func NewGame(world donburi.World, plugin *Plugin, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		ecs:    plugin.Build(ecs.NewECS(world)),
		plugin: plugin,
		cfg:    cfg,
	}
	if entry, ok := primaryWindowQuery.First(world); ok {
		g.window = entry.Entity()
	} else {
		g.window = SpawnPrimaryWindow(world, float64(cfg.Width), float64(cfg.Height)).Entity()
	}
	return g
}

// Run opens a window and runs the game loop until the window closes.
func Run(world donburi.World, plugin *Plugin, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(world, plugin, cfg))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.testRunner != nil {
		g.testRunner.step(g)
	}
	if g.cfg.Update != nil {
		if err := g.cfg.Update(g.ecs.World); err != nil {
			return err
		}
	}
	g.ecs.Update()
	g.tick++
	if g.cfg.ShowFPS {
		g.updateFPS(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.RGBA())
	if g.cfg.Draw != nil {
		g.cfg.Draw(g.ecs.World, screen)
	}
	if g.cfg.ShowFPS && g.fpsImg != nil {
		screen.DrawImage(g.fpsImg, nil)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The primary Window follows the outside
// size unless Resize has pinned it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.size[0] > 0 && g.size[1] > 0 {
		outsideWidth, outsideHeight = g.size[0], g.size[1]
	}
	world := g.ecs.World
	if world.Valid(g.window) {
		WindowComponent.SetValue(world.Entry(g.window), Window{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
	}
	return outsideWidth, outsideHeight
}

// Resize pins the primary window to width x height. Layout keeps reporting
// that size whatever the outside size is, so proxies map against it on
// every later frame. A zero size releases the pin.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		g.size = [2]int{}
		return
	}
	g.size = [2]int{width, height}
	g.Layout(width, height)
}

// updateFPS redraws the overlay every ~0.5 seconds.
func (g *Game) updateFPS(dt float64) {
	if g.fpsImg == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		g.fpsImg = ebiten.NewImage(100, 32)
	}
	g.fpsElapsed += dt
	if g.fpsElapsed < 0.5 {
		return
	}
	g.fpsElapsed = 0

	g.fpsImg.Clear()
	g.fpsImg.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fpsImg, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
