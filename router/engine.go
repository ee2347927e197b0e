package router

import (
	"fmt"
	"sync"

	"github.com/vcrobe/nojs-social/console"
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/signals"
)

// Engine manages routing with the app shell pattern and pivot-based layout reuse.
// It preserves layout instances across navigations when the layout chain matches.
type Engine struct {
	mu            sync.Mutex
	table         *Table
	history       History
	renderer      runtime.Renderer
	currentPath   string
	activeChain   []ComponentMetadata
	liveInstances []runtime.Component // Parallel to activeChain; instances are reused
	pivotPoint    int                 // First index where chain differs between routes
	onRouteChange func(chain []runtime.Component, key string)
	stopListening func()
	current       *signals.Signal[string]
}

var _ runtime.NavigationManager = (*Engine)(nil)

// NewEngine creates a router engine over an immutable route table.
// The renderer is attached later via SetRenderer because the renderer itself
// takes the engine as its NavigationManager.
func NewEngine(table *Table, history History) *Engine {
	return &Engine{
		table:         table,
		history:       history,
		liveInstances: make([]runtime.Component, 0, 4),
		current:       signals.NewSignal(""),
	}
}

// SetRenderer sets the renderer injected into every instance the engine creates.
func (e *Engine) SetRenderer(renderer runtime.Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderer = renderer
}

// Routes returns the declared routes in order.
func (e *Engine) Routes() []Route {
	return e.table.Routes()
}

// Mode reports the history mode in use.
func (e *Engine) Mode() Mode {
	return e.history.Mode()
}

// Href formats path for use in an <a href> attribute.
func (e *Engine) Href(path string) string {
	return e.history.Href(path)
}

// Current exposes the current path as a signal.
// Subscribers fire after every successful navigation.
func (e *Engine) Current() *signals.Signal[string] {
	return e.current
}

// Resolve returns the route declared for path without navigating.
func (e *Engine) Resolve(path string) (Route, bool) {
	return e.table.Lookup(path)
}

// Navigate changes the current route, pushes a history entry and notifies the
// route-change callback. Navigating to the current path does not add an entry.
func (e *Engine) Navigate(path string) error {
	return e.navigate(path, true)
}

func (e *Engine) navigate(path string, push bool) error {
	e.mu.Lock()

	console.Log("[Engine.Navigate] Called with path:", path, "current:", e.currentPath)

	if path == "" {
		console.Warn("[Engine.Navigate] The path is empty string")
	}

	target, ok := e.table.Lookup(path)
	if !ok {
		e.mu.Unlock()
		console.Error("[Engine.Navigate] No route found for path:", path)
		return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	path = normalizePath(path)

	if push && path != e.currentPath {
		e.history.Push(path)
		console.Log("[Engine.Navigate] Pushed", e.history.Href(path))
	}

	pivot := e.calculatePivot(target.Chain)
	console.Log("[Engine.Navigate] Pivot point:", pivot, "Chain length:", len(target.Chain))

	// Detach volatile instances so they no longer re-render through their old layout.
	for i := pivot; i < len(e.liveInstances); i++ {
		if slotted, ok := e.liveInstances[i].(interface{ SetSlotParent(runtime.Component) }); ok {
			slotted.SetSlotParent(nil)
		}
	}

	instances := make([]runtime.Component, len(target.Chain))
	copy(instances[:pivot], e.liveInstances[:pivot])
	for i := pivot; i < len(target.Chain); i++ {
		instance := target.Chain[i].Factory()
		if e.renderer != nil {
			instance.SetRenderer(e.renderer)
		}
		instances[i] = instance
	}
	for i := 1; i < len(instances); i++ {
		if slotted, ok := instances[i].(interface{ SetSlotParent(runtime.Component) }); ok {
			slotted.SetSlotParent(instances[i-1])
		}
	}

	e.currentPath = path
	e.activeChain = target.Chain
	e.liveInstances = instances
	e.pivotPoint = pivot

	onChange := e.onRouteChange
	e.mu.Unlock()

	// Callbacks run unlocked: they re-render, and components may navigate again.
	// Subscribers of Current see the new path before the page is rendered.
	e.current.Set(path)
	if onChange != nil {
		key := fmt.Sprintf("%s:%d", path, pivot)
		console.Log("[Engine.Navigate] Calling onRouteChange with", len(instances), "components, key:", key)
		onChange(instances, key)
	}
	return nil
}

// calculatePivot finds the first index where current and target chains differ by TypeID.
func (e *Engine) calculatePivot(targetChain []ComponentMetadata) int {
	n := min(len(e.activeChain), len(targetChain))
	for i := 0; i < n; i++ {
		if e.activeChain[i].TypeID != targetChain[i].TypeID {
			return i
		}
	}
	return n
}

// CurrentPath returns the current route path, or "" before the first navigation.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentPath
}

// CurrentPivotPoint returns the pivot point from the last navigation.
func (e *Engine) CurrentPivotPoint() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pivotPoint
}

// LiveInstances returns the mounted chain of the current route.
func (e *Engine) LiveInstances() []runtime.Component {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]runtime.Component, len(e.liveInstances))
	copy(out, e.liveInstances)
	return out
}

// Start installs the history listener and navigates to the current location.
// The initial navigation neither pushes nor replaces an entry, so the URL the
// user arrived with, query and fragment included, stays in the address bar.
// This implements the NavigationManager interface.
func (e *Engine) Start(onChange func(chain []runtime.Component, key string)) error {
	e.mu.Lock()
	e.onRouteChange = onChange
	if e.stopListening == nil {
		e.stopListening = e.history.Listen(func(path string) {
			if err := e.navigate(path, false); err != nil {
				console.Error("[Engine] popstate navigation failed:", err.Error())
			}
		})
		console.Log("[Engine] history listener registered, mode:", e.history.Mode().String())
	}
	e.mu.Unlock()

	initialPath := e.history.Location()
	console.Log("[Engine.Start] Initial path:", initialPath)
	return e.navigate(initialPath, false)
}

// GetComponentForPath resolves a URL path to a fresh instance of its page.
// This implements the NavigationManager interface.
func (e *Engine) GetComponentForPath(path string) (runtime.Component, bool) {
	route, ok := e.table.Lookup(path)
	if !ok {
		return nil, false
	}
	leaf, ok := route.Leaf()
	if !ok {
		return nil, false
	}
	return leaf.Factory(), true
}

// Cleanup removes the history listener.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	stop := e.stopListening
	e.stopListening = nil
	e.mu.Unlock()

	if stop != nil {
		stop()
		console.Log("[Engine] history listener cleaned up")
	}
}
