package proxyui

import (
	"slices"

	"github.com/yohamta/donburi"
)

// Pair is one target/proxy association.
type Pair struct {
	Target donburi.Entity
	Proxy  donburi.Entity
}

// Registry is a one-to-one mapping between proxied target entities and the
// proxy UI entities standing in for them, with constant-time lookup from
// either side. It knows nothing about markers or world state.
//
// Registry is not safe for concurrent use; it is owned by the tick that
// drives the plugin.
type Registry struct {
	byTarget map[donburi.Entity]donburi.Entity
	byProxy  map[donburi.Entity]donburi.Entity
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTarget: make(map[donburi.Entity]donburi.Entity),
		byProxy:  make(map[donburi.Entity]donburi.Entity),
	}
}

// Register associates target with proxy. Any existing pair that shares
// either side is evicted and returned, so the result holds 0, 1 or 2 pairs.
// Registering a pair that already exists returns that pair.
func (r *Registry) Register(target, proxy donburi.Entity) []Pair {
	var evicted []Pair
	if p, ok := r.RemoveByTarget(target); ok {
		evicted = append(evicted, p)
	}
	if p, ok := r.RemoveByProxy(proxy); ok {
		evicted = append(evicted, p)
	}
	r.byTarget[target] = proxy
	r.byProxy[proxy] = target
	return evicted
}

// ContainsTarget reports whether target is proxied.
func (r *Registry) ContainsTarget(target donburi.Entity) bool {
	_, ok := r.byTarget[target]
	return ok
}

// ContainsProxy reports whether proxy stands in for a target.
func (r *Registry) ContainsProxy(proxy donburi.Entity) bool {
	_, ok := r.byProxy[proxy]
	return ok
}

// ProxyOf returns the proxy standing in for target.
func (r *Registry) ProxyOf(target donburi.Entity) (donburi.Entity, bool) {
	proxy, ok := r.byTarget[target]
	return proxy, ok
}

// TargetOf returns the target proxy stands in for.
func (r *Registry) TargetOf(proxy donburi.Entity) (donburi.Entity, bool) {
	target, ok := r.byProxy[proxy]
	return target, ok
}

// RemoveByTarget removes the pair containing target.
func (r *Registry) RemoveByTarget(target donburi.Entity) (Pair, bool) {
	proxy, ok := r.byTarget[target]
	if !ok {
		return Pair{}, false
	}
	delete(r.byTarget, target)
	delete(r.byProxy, proxy)
	return Pair{Target: target, Proxy: proxy}, true
}

// RemoveByProxy removes the pair containing proxy.
func (r *Registry) RemoveByProxy(proxy donburi.Entity) (Pair, bool) {
	target, ok := r.byProxy[proxy]
	if !ok {
		return Pair{}, false
	}
	delete(r.byProxy, proxy)
	delete(r.byTarget, target)
	return Pair{Target: target, Proxy: proxy}, true
}

// Len returns the number of associations.
func (r *Registry) Len() int {
	return len(r.byTarget)
}

// Pairs returns every association ordered by target.
func (r *Registry) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.byTarget))
	for target, proxy := range r.byTarget {
		pairs = append(pairs, Pair{Target: target, Proxy: proxy})
	}
	slices.SortFunc(pairs, func(a, b Pair) int {
		switch {
		case a.Target < b.Target:
			return -1
		case a.Target > b.Target:
			return 1
		}
		return 0
	})
	return pairs
}
