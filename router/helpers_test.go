package router

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// stubPage is a named page used across the router tests.
type stubPage struct {
	runtime.ComponentBase
	Name string
}

func (p *stubPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"data-page": p.Name}, vdom.Paragraph(p.Name, nil))
}

// stubLayout exposes a BodyContent slot like real layouts do.
type stubLayout struct {
	runtime.ComponentBase
	BodyContent []*vdom.VNode
	renders     int
}

func (l *stubLayout) SetBodyContent(nodes []*vdom.VNode) {
	l.BodyContent = nodes
}

func (l *stubLayout) Render(r runtime.Renderer) *vdom.VNode {
	l.renders++
	return vdom.Div(map[string]any{"id": "layout"}, vdom.Main(nil, l.BodyContent...))
}

func page(path string, id uint32, name string) Route {
	return Page(path, id, func() runtime.Component { return &stubPage{Name: name} })
}

func testTable() *Table {
	return NewTable(
		page("/", 1, "home"),
		page("/login", 2, "login"),
		page("/profile", 3, "profile"),
		page("/register", 4, "register"),
	)
}

func pageName(c runtime.Component) string {
	if p, ok := c.(*stubPage); ok {
		return p.Name
	}
	return ""
}
