package pages

import (
	"testing"

	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/testcomponents"
	"github.com/vcrobe/nojs-social/vdom"
)

func TestPages_RenderTaggedRoot(t *testing.T) {
	tests := []struct {
		page    runtime.Component
		name    string
		heading string
	}{
		{&Home{}, "home", "Home"},
		{&Login{}, "login", "Login"},
		{&Profile{}, "profile", "Profile"},
		{&Register{}, "register", "Register"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			renderer := testcomponents.NewTestRenderer(tt.page)

			// Act
			root := renderer.RenderRoot()

			// Assert
			if root.Tag != "div" {
				t.Errorf("Expected root <div>, got <%s>", root.Tag)
			}
			if got := root.Attr("data-page"); got != tt.name {
				t.Errorf("Expected data-page '%s', got '%s'", tt.name, got)
			}
			if len(root.Children) == 0 || root.Children[0].Tag != "h2" || root.Children[0].Content != tt.heading {
				t.Errorf("Expected heading '%s'", tt.heading)
			}
		})
	}
}

func TestPages_HintsPointAtEachOther(t *testing.T) {
	tests := []struct {
		page   runtime.Component
		target string
	}{
		{&Login{}, "Register"},
		{&Register{}, "Login"},
	}

	for _, tt := range tests {
		root := testcomponents.NewTestRenderer(tt.page).RenderRoot()

		hint := root.Find(func(n *vdom.VNode) bool { return n.Attr("class") == "hint" })
		if hint == nil {
			t.Fatalf("Expected a hint paragraph on %T", tt.page)
		}
		if len(hint.Children) != 3 || hint.Children[0].Tag != "#text" {
			t.Fatalf("Expected text, emphasis, text in the hint of %T", tt.page)
		}
		if got := hint.Children[1].Children[0].Content; got != tt.target {
			t.Errorf("Expected hint on %T to name '%s', got '%s'", tt.page, tt.target, got)
		}
	}
}
