package router

import (
	"github.com/vcrobe/nojs-social/console"
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// HrefFormatter turns an application path into a URL for the address bar.
// *Engine implements it.
type HrefFormatter interface {
	Href(path string) string
}

// Link renders an anchor that navigates client-side instead of reloading.
type Link struct {
	runtime.ComponentBase

	To     string
	Label  string
	Active bool
	Hrefs  HrefFormatter
}

// Render produces <a href="..."> with a click handler calling Navigate.
// Active links carry aria-current="page".
func (l *Link) Render(r runtime.Renderer) *vdom.VNode {
	href := l.To
	if l.Hrefs != nil {
		href = l.Hrefs.Href(l.To)
	}
	attrs := map[string]any{
		"onClick": func() { l.Follow() },
	}
	if l.Active {
		attrs["aria-current"] = "page"
	}
	return vdom.Anchor(href, l.Label, attrs)
}

// ApplyProps copies props from a freshly built Link onto this instance.
func (l *Link) ApplyProps(source runtime.Component) {
	if src, ok := source.(*Link); ok {
		l.To, l.Label, l.Active, l.Hrefs = src.To, src.Label, src.Active, src.Hrefs
	}
}

// Follow navigates to the link target.
func (l *Link) Follow() {
	if err := l.Navigate(l.To); err != nil {
		console.Error("[Link] navigation to", l.To, "failed:", err.Error())
	}
}
