package host

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SetBaseHref points the document's <base href> at base, inserting the element
// at the top of <head> when the page has none. Relative asset URLs such as
// "main.wasm" then resolve from base on every client-side path.
func SetBaseHref(document []byte, base string) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(document))
	if err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	head := findElement(doc, atom.Head)
	if head == nil {
		return nil, fmt.Errorf("parse index: no <head> element")
	}

	href := baseHref(base)
	if el := findElement(head, atom.Base); el != nil {
		setAttr(el, "href", href)
	} else {
		el := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Base,
			Data:     "base",
			Attr:     []html.Attribute{{Key: "href", Val: href}},
		}
		head.InsertBefore(el, head.FirstChild)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}

func baseHref(base string) string {
	if base == "" || base == "/" {
		return "/"
	}
	if base[len(base)-1] != '/' {
		return base + "/"
	}
	return base
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
