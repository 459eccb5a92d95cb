package proxyui

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var primaryWindowQuery = donburi.NewQuery(filter.Contains(WindowComponent, PrimaryWindowTag))

// primaryWindow returns the single primary window. It reports false when
// there is none or more than one, or when the window has no area.
func primaryWindow(world donburi.World) (Window, bool) {
	var (
		window Window
		count  int
	)
	primaryWindowQuery.Each(world, func(entry *donburi.Entry) {
		window = WindowComponent.GetValue(entry)
		count++
	})
	if count != 1 || window.Width <= 0 || window.Height <= 0 {
		return Window{}, false
	}
	return window, true
}

// uiScale returns the world-wide UI scale, defaulting to 1.
func uiScale(world donburi.World) float64 {
	if entry, ok := UIScaleComponent.First(world); ok {
		return UIScaleComponent.GetValue(entry).Scale
	}
	return 1
}
