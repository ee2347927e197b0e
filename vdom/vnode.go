package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or "#text" for a bare text node
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler

	// ComponentKey identifies the component that produced this subtree.
	// When two keys differ during a patch the whole subtree is replaced.
	ComponentKey string

	callbacks []any
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is lifted into OnClick so it
// never reaches the DOM as a plain attribute.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// AddEventCallback stores a platform callback handle so it can be released later.
func (v *VNode) AddEventCallback(cb any) {
	v.callbacks = append(v.callbacks, cb)
}

// GetEventCallbacks returns the callback handles attached to this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.callbacks
}

// ClearEventCallbacks drops all stored callback handles.
func (v *VNode) ClearEventCallbacks() {
	v.callbacks = nil
}

// Attr returns the string form of an attribute, or "" when absent.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	if s, ok := v.Attributes[name].(string); ok {
		return s
	}
	return ""
}

// Find returns the first node in the subtree (depth-first, including v)
// for which match returns true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, child := range v.Children {
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every node in the subtree for which match returns true.
func (v *VNode) FindAll(match func(*VNode) bool) []*VNode {
	if v == nil {
		return nil
	}
	var out []*VNode
	if match(v) {
		out = append(out, v)
	}
	for _, child := range v.Children {
		out = append(out, child.FindAll(match)...)
	}
	return out
}

// Element creates a VNode for an arbitrary tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode("#text", nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text as its content.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	switch {
	case level < 1:
		level = 1
	case level > 6:
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Div creates a <div> VNode with the given children.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Nav creates a <nav> VNode with the given children.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("nav", attrs, children, "")
}

// Main creates a <main> VNode with the given children.
func Main(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("main", attrs, children, "")
}

// Anchor creates an <a href> VNode.
func Anchor(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}
