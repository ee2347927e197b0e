package pages

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// Register is the page mounted for the "/register" route.
type Register struct {
	runtime.ComponentBase
}

func (p *Register) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page", "data-page": "register"},
		vdom.Heading(2, "Register", nil),
		vdom.Paragraph("Create an account to start chatting with friends.", nil),
		vdom.Element("p", map[string]any{"class": "hint"},
			vdom.Text("Already registered? Choose "),
			vdom.Element("strong", nil, vdom.Text("Login")),
			vdom.Text(" in the navigation."),
		),
	)
}
