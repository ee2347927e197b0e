package pages

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// Login is the page mounted for the "/login" route.
type Login struct {
	runtime.ComponentBase
}

func (p *Login) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page", "data-page": "login"},
		vdom.Heading(2, "Login", nil),
		vdom.Paragraph("Sign in with your username and password.", nil),
		vdom.Element("p", map[string]any{"class": "hint"},
			vdom.Text("No account yet? Choose "),
			vdom.Element("strong", nil, vdom.Text("Register")),
			vdom.Text(" in the navigation."),
		),
	)
}
