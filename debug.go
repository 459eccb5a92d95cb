package proxyui

import (
	"context"
	"log/slog"
	"time"

	"github.com/yohamta/donburi"
)

// debugStats holds per-tick timing and association metrics.
// Only populated when the plugin logger has debug enabled.
type debugStats struct {
	passTimes    []time.Duration
	associations int
	declarations int
}

// debugMaxAssociations is the registry size above which a tick warns.
const debugMaxAssociations = 10000

// debugEnabled reports whether per-tick stats should be collected.
func (p *Plugin) debugEnabled() bool {
	return p.log.Enabled(context.Background(), slog.LevelDebug)
}

// updateWithStats runs every pass like Update, timing each one.
func (p *Plugin) updateWithStats(world donburi.World) debugStats {
	stats := debugStats{
		passTimes:    make([]time.Duration, len(p.passes)),
		declarations: donburiCount(world, ProxyUIComponent),
	}
	for i, pass := range p.passes {
		start := time.Now()
		pass.Run(world)
		stats.passTimes[i] = time.Since(start)
	}
	stats.associations = p.registry.Len()
	return stats
}

// debugLog reports tick stats through the plugin logger.
func (p *Plugin) debugLog(stats debugStats) {
	attrs := make([]any, 0, 2*len(p.passes)+6)
	var total time.Duration
	for i, pass := range p.passes {
		attrs = append(attrs, pass.Name, stats.passTimes[i])
		total += stats.passTimes[i]
	}
	attrs = append(attrs,
		"total", total,
		"declarations", stats.declarations,
		"associations", stats.associations,
	)
	p.log.Debug("proxy tick", attrs...)

	if stats.associations > debugMaxAssociations {
		p.log.Warn("registry size exceeds threshold",
			"associations", stats.associations, "threshold", debugMaxAssociations)
	}
}

func donburiCount[T any](world donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(world, func(*donburi.Entry) { n++ })
	return n
}
