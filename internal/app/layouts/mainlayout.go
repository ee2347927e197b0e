package layouts

import (
	"github.com/vcrobe/nojs-social/router"
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/vdom"
)

// NavItem is one entry of the layout's navigation bar.
type NavItem struct {
	Path  string
	Label string
}

// MainLayout is the persistent app shell layout: a title, a navigation bar and
// a BodyContent slot the router fills with the current page.
type MainLayout struct {
	runtime.ComponentBase

	Title  string
	Nav    []NavItem
	Router *router.Engine

	BodyContent []*vdom.VNode
	ActivePath  string

	unsubscribe func()
}

// SetBodyContent fills the slot with the rendered page.
func (l *MainLayout) SetBodyContent(nodes []*vdom.VNode) {
	l.BodyContent = nodes
}

// OnInit tracks the router's current path. The app shell re-renders on every
// navigation, so the subscription only records the path.
func (l *MainLayout) OnInit() {
	if l.Router == nil {
		return
	}
	current := l.Router.Current()
	l.ActivePath = current.Get()
	l.unsubscribe = current.Subscribe(func() {
		l.ActivePath = current.Get()
	})
}

func (l *MainLayout) OnDestroy() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

func (l *MainLayout) Render(r runtime.Renderer) *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(l.Nav))
	for _, item := range l.Nav {
		link := &router.Link{
			To:     item.Path,
			Label:  item.Label,
			Active: item.Path == l.ActivePath,
		}
		if l.Router != nil {
			link.Hrefs = l.Router
		}
		if node := r.RenderChild("nav-link-"+item.Path, link); node != nil {
			links = append(links, node)
		}
	}

	return vdom.Div(map[string]any{"class": "layout"},
		vdom.Heading(1, l.Title, nil),
		vdom.Nav(map[string]any{"class": "nav"}, links...),
		vdom.Main(map[string]any{"class": "content"}, l.BodyContent...),
	)
}
