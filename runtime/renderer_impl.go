//go:build js && wasm

package runtime

import (
	"errors"

	"github.com/vcrobe/nojs-social/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// ErrNoRouter is returned by Navigate when the renderer was built without a NavigationManager.
var ErrNoRouter = errors.New("no router configured for navigation")

const rootKey = "__root__"

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and handles the rendering lifecycle.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool
	activeKeys       map[string]bool
	currentComponent Component
	currentKey       string
	navManager       NavigationManager
	mountID          string
	prevVDOM         *vdom.VNode
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing.
func NewRenderer(navManager NavigationManager, mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		navManager:  navManager,
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component and the key used to detect
// root replacement between renders.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if key != r.currentKey {
		delete(r.initialized, rootKey)
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot builds the VDOM from the root component and mounts or patches it.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)
	if !r.initialized[rootKey] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	newVDOM := r.currentComponent.Render(r)
	if newVDOM != nil {
		newVDOM.ComponentKey = r.currentKey
	}

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the instance stored under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if instance != childWithProps {
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	node := instance.Render(r)
	if node != nil {
		node.ComponentKey = key
	}
	return node
}

// cleanupUnmountedComponents drops instances not rendered in the last cycle
// and calls OnDestroy on those implementing Cleaner.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
		delete(r.initialized, key)
	}
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// ReRenderSlot re-renders after a slotted component changed. Slots live inside
// the root tree, so the root is re-rendered and the patch stays minimal.
func (r *RendererImpl) ReRenderSlot(slotParent Component) error {
	r.RenderRoot()
	return nil
}

// Navigate delegates to the NavigationManager (router) to perform client-side navigation.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return ErrNoRouter
	}
	return r.navManager.Navigate(path)
}
