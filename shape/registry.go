// Package shape keeps named cursor geometries. A Registry is created per
// screen rather than shared process-wide, so tests never see each other's shapes.
package shape

import (
	"sort"
	"sync"

	"turtle/geom"
)

// Default is the cursor a new turtle wears.
const Default = "indented triangle"

type Registry struct {
	mu     sync.RWMutex
	shapes map[string]geom.Geometry
}

// NewRegistry returns a registry preloaded with the built-in shapes.
func NewRegistry() *Registry {
	r := &Registry{shapes: make(map[string]geom.Geometry)}
	for name, g := range builtins() {
		r.shapes[name] = g
	}
	return r
}

// Register adds or replaces a shape. Geometry handed out by Lookup is shared
// by every stamp made from it, so callers must not mutate it afterwards.
func (r *Registry) Register(name string, g geom.Geometry) {
	r.mu.Lock()
	r.shapes[name] = g
	r.mu.Unlock()
}

func (r *Registry) Lookup(name string) (geom.Geometry, bool) {
	r.mu.RLock()
	g, ok := r.shapes[name]
	r.mu.RUnlock()
	return g, ok
}

// Names lists registered shapes in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// All built-ins point along +X, the direction of heading zero.
func builtins() map[string]geom.Geometry {
	return map[string]geom.Geometry{
		"triangle": geom.Polygon{Points: []geom.Point{
			{X: 10, Y: 0}, {X: -5, Y: 8.66}, {X: -5, Y: -8.66},
		}},
		"indented triangle": geom.Polygon{Points: []geom.Point{
			{X: 10, Y: 0}, {X: -10, Y: 7}, {X: -5, Y: 0}, {X: -10, Y: -7},
		}},
		"arrow": geom.Polygon{Points: []geom.Point{
			{X: 10, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 5}, {X: -10, Y: 5},
			{X: -10, Y: -5}, {X: 0, Y: -5}, {X: 0, Y: -10},
		}},
		"square": geom.Polygon{Points: []geom.Point{
			{X: 10, Y: 10}, {X: -10, Y: 10}, {X: -10, Y: -10}, {X: 10, Y: -10},
		}},
		"circle": geom.NewPolygon(geom.Circle{Radius: 10, Steps: 20}.Vertices()),
		"classic": geom.Polygon{Points: []geom.Point{
			{X: 0, Y: 0}, {X: -9, Y: 5}, {X: -7, Y: 0}, {X: -9, Y: -5},
		}},
		"turtle": geom.Polygon{Points: []geom.Point{
			{X: 16, Y: 0}, {X: 14, Y: 2}, {X: 10, Y: 1}, {X: 7, Y: 4},
			{X: 9, Y: 7}, {X: 8, Y: 9}, {X: 5, Y: 6}, {X: 1, Y: 7},
			{X: -3, Y: 5}, {X: -6, Y: 8}, {X: -8, Y: 6}, {X: -5, Y: 4},
			{X: -7, Y: 0}, {X: -5, Y: -4}, {X: -8, Y: -6}, {X: -6, Y: -8},
			{X: -3, Y: -5}, {X: 1, Y: -7}, {X: 5, Y: -6}, {X: 8, Y: -9},
			{X: 9, Y: -7}, {X: 7, Y: -4}, {X: 10, Y: -1}, {X: 14, Y: -2},
		}},
	}
}
