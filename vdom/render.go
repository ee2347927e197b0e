//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-social/console"
)

// listener is what createElement stores on a VNode for every attached handler.
type listener struct {
	event string
	fn    js.Func
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
// When el is truthy the listeners are detached from it first.
func releaseCallbacks(el js.Value, v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		l, ok := cb.(listener)
		if !ok {
			continue
		}
		if el.Truthy() {
			el.Call("removeEventListener", l.event, l.fn)
		}
		l.fn.Release()
	}
	v.ClearEventCallbacks()
}

func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(js.Undefined(), v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// Clear empties the mount element and releases callbacks held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}
	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func setAttributeValue(el js.Value, key string, value any) {
	if b, ok := value.(bool); ok {
		if b {
			el.Call("setAttribute", key, "")
		}
		return
	}
	if _, ok := value.(func(js.Value)); ok {
		return
	}
	el.Call("setAttribute", key, value)
}

func isEventAttr(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}

// attachEventListeners wires "onXxx" attributes holding func(js.Value) and the
// node's OnClick handler. Anchors get preventDefault so clicks stay client-side.
func attachEventListeners(el js.Value, n *VNode) {
	for key, value := range n.Attributes {
		if !isEventAttr(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}
		eventName := key[2:]
		if eventName[0] >= 'A' && eventName[0] <= 'Z' {
			eventName = string(eventName[0]+('a'-'A')) + eventName[1:]
		}
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})
		el.Call("addEventListener", eventName, cb)
		n.AddEventCallback(listener{event: eventName, fn: cb})
	}

	if n.OnClick != nil {
		onClick := n.OnClick
		anchor := n.Tag == "a"
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if anchor && len(args) > 0 {
				args[0].Call("preventDefault")
			}
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		n.AddEventCallback(listener{event: "click", fn: cb})
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	// Empty text still gets a DOM node so childNodes indices match Children.
	if n.Tag == "#text" {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		if isEventAttr(k) {
			continue
		}
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	if n.Content != "" && len(n.Children) == 0 {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}
	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}
	root := mount.Get("firstChild")
	if !root.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}
	patchElement(root, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)
	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey && oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}
	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}
	if newVNode.Tag == "#text" {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Handlers close over component state, so they are rebound on every patch.
	releaseCallbacks(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	if len(newVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content || len(oldVNode.Children) > 0 {
			for _, child := range oldVNode.Children {
				deepReleaseCallbacks(child)
			}
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}
	if len(oldVNode.Children) == 0 && oldVNode.Content != "" {
		domElement.Set("textContent", "")
	}
	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if isEventAttr(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}
	for key, value := range newAttrs {
		if isEventAttr(key) {
			continue
		}
		if b, ok := value.(bool); ok && !b {
			domElement.Call("removeAttribute", key)
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	domChildren := domElement.Get("childNodes")
	common := min(len(oldChildren), len(newChildren))

	for i := 0; i < common; i++ {
		oldChild, newChild := oldChildren[i], newChildren[i]
		switch {
		case oldChild == nil && newChild != nil:
			el := createElement(newChild)
			if !el.Truthy() {
				continue
			}
			if ref := domChildren.Call("item", i); ref.Truthy() {
				domElement.Call("insertBefore", el, ref)
			} else {
				domElement.Call("appendChild", el)
			}
		case oldChild != nil && newChild == nil:
			deepReleaseCallbacks(oldChild)
			if el := domChildren.Call("item", i); el.Truthy() {
				domElement.Call("removeChild", el)
			}
		case oldChild != nil && newChild != nil:
			if el := domChildren.Call("item", i); el.Truthy() {
				patchElement(el, oldChild, newChild)
			}
		}
	}

	for i := common; i < len(newChildren); i++ {
		el := createElement(newChildren[i])
		if el.Truthy() {
			domElement.Call("appendChild", el)
		}
	}

	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		deepReleaseCallbacks(oldChildren[i])
		if el := domChildren.Call("item", i); el.Truthy() {
			domElement.Call("removeChild", el)
		}
	}
}
