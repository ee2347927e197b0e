package pages

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// Home is the page mounted for the "/" route.
type Home struct {
	runtime.ComponentBase
}

func (p *Home) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page", "data-page": "home"},
		vdom.Heading(2, "Home", nil),
		vdom.Paragraph("Welcome back. Pick a page from the navigation to get started.", nil),
	)
}
