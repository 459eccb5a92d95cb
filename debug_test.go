package proxyui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/yohamta/donburi"
)

func TestDebugTickStats(t *testing.T) {
	f := newFixture(t, Config{ManageTransforms: true})
	target := f.spawnTarget()
	panel := f.spawnPanel(400, 300, 200, 100)
	Declare(panel, target.Entity())

	f.plugin.Update(f.world)

	out := f.logs.String()
	for _, want := range []string{"proxy tick", "transforms=", "associations=1", "declarations=1", "total="} {
		if !strings.Contains(out, want) {
			t.Errorf("tick log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugStatsSkippedWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	world := donburi.NewWorld()
	p := New(Config{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))})
	p.Update(world)

	if strings.Contains(buf.String(), "proxy tick") {
		t.Errorf("tick stats logged below debug level:\n%s", buf.String())
	}
}

func TestDebugWarnsOnLargeRegistry(t *testing.T) {
	f := newFixture(t, Config{})
	f.plugin.debugLog(debugStats{
		passTimes:    make([]time.Duration, len(f.plugin.passes)),
		associations: debugMaxAssociations + 1,
	})

	if !strings.Contains(f.logs.String(), "registry size exceeds threshold") {
		t.Error("expected registry size warning")
	}
}
