package pages

import (
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// Profile is the page mounted for the "/profile" route.
type Profile struct {
	runtime.ComponentBase
}

func (p *Profile) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "page", "data-page": "profile"},
		vdom.Heading(2, "Profile", nil),
		vdom.Paragraph("Your account details and friends.", nil),
	)
}
