// Package router maps URL paths to component chains and keeps the browser
// URL in sync through the History abstraction.
package router

import (
	"strings"

	"github.com/vcrobe/nojs-social/runtime"
)

// Route defines a path and its component chain (layout hierarchy + page).
// Paths are literal; the last element of Chain is the page.
type Route struct {
	Path  string
	Chain []ComponentMetadata
}

// ComponentMetadata holds the factory and compile-time type ID for a component.
// TypeIDs drive the pivot algorithm: equal IDs at the same chain index mean the
// live instance can be kept across a navigation.
type ComponentMetadata struct {
	Factory runtime.ComponentFactory
	TypeID  uint32
}

// Page builds a route whose chain is a single page component.
func Page(path string, typeID uint32, factory runtime.ComponentFactory) Route {
	return Route{
		Path:  path,
		Chain: []ComponentMetadata{{Factory: factory, TypeID: typeID}},
	}
}

// Leaf returns the page metadata (last chain element).
func (r Route) Leaf() (ComponentMetadata, bool) {
	if len(r.Chain) == 0 {
		return ComponentMetadata{}, false
	}
	return r.Chain[len(r.Chain)-1], true
}

func (r Route) clone() Route {
	chain := make([]ComponentMetadata, len(r.Chain))
	copy(chain, r.Chain)
	return Route{Path: r.Path, Chain: chain}
}

// Table is an ordered, immutable sequence of routes.
// Declaration order is resolution priority: the first matching route wins.
type Table struct {
	routes []Route
}

// NewTable copies routes into a new table. Later changes to the argument
// slice do not affect the table.
func NewTable(routes ...Route) *Table {
	t := &Table{routes: make([]Route, len(routes))}
	for i := range routes {
		t.routes[i] = routes[i].clone()
	}
	return t
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	for i := range t.routes {
		out[i] = t.routes[i].clone()
	}
	return out
}

// Paths returns the declared paths in declaration order.
func (t *Table) Paths() []string {
	out := make([]string, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Path
	}
	return out
}

// Len reports the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Lookup returns the first route whose path equals path.
// A trailing slash is ignored on both sides, so "/login/" matches "/login".
func (t *Table) Lookup(path string) (Route, bool) {
	path = normalizePath(path)
	for _, r := range t.routes {
		if normalizePath(r.Path) == path {
			return r.clone(), true
		}
	}
	return Route{}, false
}

// normalizePath returns path with exactly one leading slash and no trailing slash.
// Query strings and fragments are dropped.
func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
