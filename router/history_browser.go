//go:build js && wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/nojs-social/console"
)

// BrowserHistory drives window.history. Both modes use pushState and popstate;
// they differ only in how the path is written into the URL.
type BrowserHistory struct {
	mode Mode
	base string
}

var _ History = (*BrowserHistory)(nil)

// NewBrowserHistory creates a history bound to the page's window.
func NewBrowserHistory(mode Mode, base string) *BrowserHistory {
	return &BrowserHistory{mode: mode, base: base}
}

func (h *BrowserHistory) Mode() Mode {
	return h.mode
}

func (h *BrowserHistory) Location() string {
	location := js.Global().Get("location")
	if h.mode == HashMode {
		return FromHash(location.Get("hash").String())
	}
	return StripBase(h.base, location.Get("pathname").String())
}

func (h *BrowserHistory) Push(path string) {
	js.Global().Get("history").Call("pushState", nil, "", h.Href(path))
}

func (h *BrowserHistory) Replace(path string) {
	js.Global().Get("history").Call("replaceState", nil, "", h.Href(path))
}

func (h *BrowserHistory) Listen(fn func(path string)) (stop func()) {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		path := h.Location()
		console.Log("[BrowserHistory] popstate:", path)
		fn(path)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", listener)

	return func() {
		js.Global().Call("removeEventListener", "popstate", listener)
		listener.Release()
	}
}

func (h *BrowserHistory) Href(path string) string {
	return Href(h.mode, h.base, path)
}
