package router

import (
	"fmt"

	"github.com/vcrobe/nojs-social/console"
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// slotHost is implemented by layouts exposing a BodyContent slot.
type slotHost interface {
	SetBodyContent([]*vdom.VNode)
}

// AppShell is a stable root component that holds a persistent layout and swaps
// only its BodyContent slot when navigation occurs. The layout instance and its
// state survive every navigation.
type AppShell struct {
	runtime.ComponentBase

	persistentLayout runtime.Component

	// current chain of component instances from the router (volatile)
	currentChain []runtime.Component
	currentKey   string
}

// NewAppShell creates an AppShell around persistentLayout, which should expose
// SetBodyContent([]*vdom.VNode). A nil layout renders the page directly.
func NewAppShell(persistentLayout runtime.Component) *AppShell {
	return &AppShell{
		persistentLayout: persistentLayout,
		currentChain:     make([]runtime.Component, 0),
	}
}

// SetPage replaces the volatile chain and triggers a re-render.
// It matches the Engine's route-change callback signature.
func (a *AppShell) SetPage(chain []runtime.Component, key string) {
	console.Log("[AppShell.SetPage] Called with", len(chain), "components, key:", key)

	if len(chain) > 0 && chain[0] == a.persistentLayout {
		chain = chain[1:]
	}
	a.currentChain = append(a.currentChain[:0:0], chain...)
	a.currentKey = key

	if a.GetRenderer() != nil {
		a.StateHasChanged()
	}
}

// Chain returns the components currently mounted below the layout.
func (a *AppShell) Chain() []runtime.Component {
	out := make([]runtime.Component, len(a.currentChain))
	copy(out, a.currentChain)
	return out
}

// Key returns the reconciliation key of the current page.
func (a *AppShell) Key() string {
	return a.currentKey
}

// Render links the chain bottom-up into BodyContent slots and renders the
// persistent layout with the first chain component in its slot.
func (a *AppShell) Render(r runtime.Renderer) *vdom.VNode {
	var slotChildren []*vdom.VNode

	if n := len(a.currentChain); n > 0 {
		for i := n - 1; i > 0; i-- {
			child, parent := a.currentChain[i], a.currentChain[i-1]
			key := fmt.Sprintf("slot-chain-%d-%T-%p", i, child, child)
			if node := r.RenderChild(key, child); node != nil {
				if host, ok := parent.(slotHost); ok {
					host.SetBodyContent([]*vdom.VNode{node})
				}
			}
		}

		root := a.currentChain[0]
		key := fmt.Sprintf("slot-root-%T-%p", root, root)
		if node := r.RenderChild(key, root); node != nil {
			slotChildren = []*vdom.VNode{node}
		}
	}

	if a.persistentLayout == nil {
		if len(slotChildren) > 0 {
			return slotChildren[0]
		}
		return vdom.Div(nil)
	}

	if host, ok := a.persistentLayout.(slotHost); ok {
		host.SetBodyContent(slotChildren)
	}
	return r.RenderChild("persistent-layout", a.persistentLayout)
}
