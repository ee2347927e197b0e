//go:build js && wasm

package vdom

import (
	"syscall/js"
	"testing"
)

func testMount(t *testing.T) string {
	t.Helper()
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		t.Skip("requires a browser document")
	}
	el := doc.Call("createElement", "div")
	el.Set("id", "vdom-test-mount")
	doc.Get("body").Call("appendChild", el)
	t.Cleanup(func() { el.Call("remove") })
	return "#vdom-test-mount"
}

func TestPatch_EmptyTextKeepsIndicesAligned(t *testing.T) {
	// Arrange
	mount := testMount(t)
	old := Div(nil, Text(""), Paragraph("before", nil))
	RenderToSelector(mount, old)

	// Act
	next := Div(nil, Text("lead"), Paragraph("after", nil))
	Patch(mount, old, next)

	// Assert
	root := js.Global().Get("document").Call("querySelector", mount).Get("firstChild")
	children := root.Get("childNodes")
	if n := children.Get("length").Int(); n != 2 {
		t.Fatalf("Expected 2 DOM children, got %d", n)
	}
	if got := children.Call("item", 0).Get("nodeValue").String(); got != "lead" {
		t.Errorf("Expected text 'lead', got '%s'", got)
	}
	if got := children.Call("item", 1).Get("textContent").String(); got != "after" {
		t.Errorf("Expected paragraph 'after', got '%s'", got)
	}
}
