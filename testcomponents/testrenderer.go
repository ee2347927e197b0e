package testcomponents

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Route Navigate calls to a NavigationManager, or just record them
// - Inspect the resulting VDOM tree
// - Observe OnDestroy on children that drop out of a render pass
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	navigator   runtime.NavigationManager

	instances   map[string]runtime.Component
	initialized map[string]bool
	activeKeys  map[string]bool

	// Navigations records every path passed to Navigate.
	Navigations []string
	// Renders counts root render passes.
	Renders int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component:   comp,
		instances:   make(map[string]runtime.Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
	}
	comp.SetRenderer(r)
	return r
}

// SetNavigationManager routes Navigate calls to nav (typically a router.Engine).
func (r *TestRenderer) SetNavigationManager(nav runtime.NavigationManager) {
	r.navigator = nav
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.render()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	if initializer, ok := r.component.(runtime.Initializer); ok && !r.initialized["__root__"] {
		initializer.OnInit()
		r.initialized["__root__"] = true
	}
	r.activeKeys = make(map[string]bool)
	r.Renders++
	r.currentVDOM = r.component.Render(r)
	r.cleanupUnmountedComponents()
}

// cleanupUnmountedComponents drops children not rendered in the last pass and
// calls OnDestroy on those implementing Cleaner.
func (r *TestRenderer) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// Mounted reports whether a child is currently cached under key.
func (r *TestRenderer) Mounted(key string) bool {
	_, ok := r.instances[key]
	return ok
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderChild renders a child, reusing the instance stored under key and
// calling OnInit the first time a key is seen.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.activeKeys[key] = true
	instance, exists := r.instances[key]
	if !exists {
		instance = child
		r.instances[key] = instance
	} else if instance != child {
		if updater, ok := instance.(runtime.PropUpdater); ok {
			updater.ApplyProps(child)
		}
	}
	instance.SetRenderer(r)
	if initializer, ok := instance.(runtime.Initializer); ok && !r.initialized[key] {
		initializer.OnInit()
	}
	r.initialized[key] = true
	return instance.Render(r)
}

// Navigate records path and forwards it to the NavigationManager, if any.
func (r *TestRenderer) Navigate(path string) error {
	r.Navigations = append(r.Navigations, path)
	if r.navigator == nil {
		return nil
	}
	return r.navigator.Navigate(path)
}

// ReRenderSlot re-renders the whole tree; slots live inside it.
func (r *TestRenderer) ReRenderSlot(slotParent runtime.Component) error {
	r.render()
	return nil
}
