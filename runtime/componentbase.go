package runtime

import (
	"errors"

	"github.com/vcrobe/nojs-social/console"
)

// ErrNotMounted is returned when a component uses the renderer before the
// framework attached one.
var ErrNotMounted = errors.New("component not mounted: renderer is nil")

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer   Renderer
	slotParent Component // Parent layout if this component is in a []*vdom.VNode slot
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer instance associated with this component.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
// If this component is mounted inside a layout's slot, only that slot is
// re-rendered. Otherwise the whole tree is.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}

	if b.slotParent != nil {
		if err := b.renderer.ReRenderSlot(b.slotParent); err != nil {
			console.Error("ReRenderSlot failed:", err.Error())
		}
		return
	}

	b.renderer.ReRender()
}

// SetSlotParent associates this component with a parent layout.
// Passing nil detaches it.
func (b *ComponentBase) SetSlotParent(parent Component) {
	b.slotParent = parent
}

// SlotParent returns the layout this component is slotted into, if any.
func (b *ComponentBase) SlotParent() Component {
	return b.slotParent
}

// Navigate requests client-side navigation to a new path.
// The path is passed to the router, which updates the browser URL and
// renders the matching page.
//
// Example usage in a component:
//
//	func (c *MyComponent) HandleClick() {
//	    if err := c.Navigate("/profile"); err != nil {
//	        console.Error("Navigation failed:", err.Error())
//	    }
//	}
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return ErrNotMounted
	}
	return b.renderer.Navigate(path)
}
