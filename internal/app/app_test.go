package app

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vcrobe/nojs-social/internal/app/pages"
	"github.com/vcrobe/nojs-social/router"
	"github.com/vcrobe/nojs-social/runtime"
	"github.com/vcrobe/nojs-social/testcomponents"
	"github.com/vcrobe/nojs-social/vdom"
)

func startApp(t *testing.T, initial string) (*App, *router.MemoryHistory, *testcomponents.TestRenderer) {
	t.Helper()
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	history := router.NewMemoryHistory(cfg.HistoryMode(), cfg.Base, initial)
	a := New(cfg, history)

	renderer := testcomponents.NewTestRenderer(a.Shell)
	renderer.SetNavigationManager(a.Router)
	a.Attach(renderer)
	renderer.RenderRoot()

	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(a.Stop)
	return a, history, renderer
}

// displayedPages returns the data-page values present in the rendered tree.
func displayedPages(root *vdom.VNode) []string {
	var names []string
	for _, n := range root.FindAll(func(n *vdom.VNode) bool { return n.Attr("data-page") != "" }) {
		names = append(names, n.Attr("data-page"))
	}
	return names
}

func TestRoutes_DeclaresFourEntriesInOrder(t *testing.T) {
	routes := Routes().Routes()

	want := []struct {
		path   string
		typeID uint32
		page   runtime.Component
	}{
		{"/", HomePage_TypeID, &pages.Home{}},
		{"/login", LoginPage_TypeID, &pages.Login{}},
		{"/profile", ProfilePage_TypeID, &pages.Profile{}},
		{"/register", RegisterPage_TypeID, &pages.Register{}},
	}
	if len(routes) != len(want) {
		t.Fatalf("Expected %d routes, got %d", len(want), len(routes))
	}
	for i, w := range want {
		r := routes[i]
		if r.Path != w.path {
			t.Errorf("Route %d: expected path '%s', got '%s'", i, w.path, r.Path)
		}
		leaf, ok := r.Leaf()
		if !ok {
			t.Fatalf("Route %s has an empty chain", r.Path)
		}
		if len(r.Chain) != 1 {
			t.Errorf("Route %s: expected a single component, got %d", r.Path, len(r.Chain))
		}
		if leaf.TypeID != w.typeID {
			t.Errorf("Route %s: expected TypeID %d, got %d", r.Path, w.typeID, leaf.TypeID)
		}
		if got, wantType := reflect.TypeOf(leaf.Factory()), reflect.TypeOf(w.page); got != wantType {
			t.Errorf("Route %s: expected %v, got %v", r.Path, wantType, got)
		}
	}
}

func TestRoutes_BuildingTwiceYieldsSameMapping(t *testing.T) {
	first, second := Routes(), Routes()

	if first == second {
		t.Fatal("Expected two independent tables")
	}
	a, b := first.Routes(), second.Routes()
	if len(a) != len(b) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Path != b[i].Path {
			t.Errorf("Entry %d: paths differ, '%s' vs '%s'", i, a[i].Path, b[i].Path)
		}
		la, _ := a[i].Leaf()
		lb, _ := b[i].Leaf()
		if la.TypeID != lb.TypeID {
			t.Errorf("Entry %d: TypeIDs differ, %d vs %d", i, la.TypeID, lb.TypeID)
		}
		if reflect.TypeOf(la.Factory()) != reflect.TypeOf(lb.Factory()) {
			t.Errorf("Entry %d: components differ", i)
		}
	}
}

func TestTypeIDs_AreUnique(t *testing.T) {
	ids := []uint32{HomePage_TypeID, LoginPage_TypeID, ProfilePage_TypeID, RegisterPage_TypeID}
	seen := make(map[uint32]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("TypeID %d is used twice", id)
		}
		seen[id] = true
	}
}

func TestLoadConfig_UsesPathHistory(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HistoryMode() != router.PathMode {
		t.Errorf("Expected path history, got '%s'", cfg.HistoryMode())
	}
	if cfg.Mount != "#app" {
		t.Errorf("Expected mount '#app', got '%s'", cfg.Mount)
	}
}

// TestApp_EachPathDisplaysOnlyItsPage navigates through every declared path
// and checks the rendered tree holds that page and no other.
func TestApp_EachPathDisplaysOnlyItsPage(t *testing.T) {
	a, _, renderer := startApp(t, "/")

	want := map[string]string{
		"/":         "home",
		"/login":    "login",
		"/profile":  "profile",
		"/register": "register",
	}
	for _, path := range []string{"/login", "/profile", "/register", "/"} {
		if err := a.Router.Navigate(path); err != nil {
			t.Fatalf("Navigate(%s) failed: %v", path, err)
		}
		got := displayedPages(renderer.GetCurrentVDOM())
		if len(got) != 1 || got[0] != want[path] {
			t.Errorf("Navigate(%s): expected only '%s', got %v", path, want[path], got)
		}
	}
}

func TestApp_ProfileAfterStart(t *testing.T) {
	// Arrange
	a, _, renderer := startApp(t, "/")

	// Act
	err := a.Router.Navigate("/profile")

	// Assert
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if got := displayedPages(renderer.GetCurrentVDOM()); len(got) != 1 || got[0] != "profile" {
		t.Errorf("Expected Profile to be displayed, got %v", got)
	}
	if _, ok := a.Router.LiveInstances()[0].(*pages.Profile); !ok {
		t.Errorf("Expected a *pages.Profile instance, got %T", a.Router.LiveInstances()[0])
	}
}

func TestApp_NonexistentPathMatchesNothing(t *testing.T) {
	// Arrange
	a, history, renderer := startApp(t, "/login")

	// Act
	err := a.Router.Navigate("/nonexistent")

	// Assert
	if !errors.Is(err, router.ErrRouteNotFound) {
		t.Fatalf("Expected ErrRouteNotFound, got %v", err)
	}
	if _, ok := a.Router.Resolve("/nonexistent"); ok {
		t.Error("Expected /nonexistent to match no entry")
	}
	if a.Router.CurrentPath() != "/login" {
		t.Errorf("Expected current path to stay '/login', got '%s'", a.Router.CurrentPath())
	}
	if got := displayedPages(renderer.GetCurrentVDOM()); len(got) != 1 || got[0] != "login" {
		t.Errorf("Expected Login to stay displayed, got %v", got)
	}
	if len(history.Entries()) != 1 {
		t.Errorf("Expected no history entry, got %v", history.Entries())
	}
}

// TestApp_UnmatchedDeepLinkKeepsRunning starts on a path with no route and
// checks the shell stays usable for later navigation.
func TestApp_UnmatchedDeepLinkKeepsRunning(t *testing.T) {
	// Arrange
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	history := router.NewMemoryHistory(cfg.HistoryMode(), cfg.Base, "/nonexistent")
	a := New(cfg, history)
	renderer := testcomponents.NewTestRenderer(a.Shell)
	renderer.SetNavigationManager(a.Router)
	a.Attach(renderer)
	renderer.RenderRoot()
	t.Cleanup(a.Stop)

	// Act
	startErr := a.Start()
	navErr := a.Router.Navigate("/login")

	// Assert
	if !errors.Is(startErr, router.ErrRouteNotFound) {
		t.Fatalf("Expected Start to report ErrRouteNotFound, got %v", startErr)
	}
	if navErr != nil {
		t.Fatalf("Expected Navigate(/login) to succeed, got %v", navErr)
	}
	if a.Router.CurrentPath() != "/login" {
		t.Errorf("Expected current path '/login', got '%s'", a.Router.CurrentPath())
	}
	if got := displayedPages(renderer.GetCurrentVDOM()); len(got) != 1 || got[0] != "login" {
		t.Errorf("Expected Login to be displayed, got %v", got)
	}
	if entries := history.Entries(); len(entries) != 2 || entries[1] != "/login" {
		t.Errorf("Expected '/login' to be pushed, got %v", entries)
	}
}

func TestApp_URLsAndLinksHaveNoFragment(t *testing.T) {
	a, history, renderer := startApp(t, "/")

	for _, path := range []string{"/login", "/profile", "/register"} {
		if err := a.Router.Navigate(path); err != nil {
			t.Fatalf("Navigate(%s) failed: %v", path, err)
		}
	}

	for _, url := range history.URLs() {
		if strings.Contains(url, "#") {
			t.Errorf("Expected path-based URL, got '%s'", url)
		}
	}
	anchors := renderer.GetCurrentVDOM().FindAll(func(n *vdom.VNode) bool { return n.Tag == "a" })
	if len(anchors) != 4 {
		t.Fatalf("Expected 4 navigation links, got %d", len(anchors))
	}
	for _, anchor := range anchors {
		if href := anchor.Attr("href"); strings.Contains(href, "#") || !strings.HasPrefix(href, "/") {
			t.Errorf("Expected path-based href, got '%s'", href)
		}
	}
}

func TestApp_LinkClickNavigatesAndMarksActive(t *testing.T) {
	// Arrange
	a, history, renderer := startApp(t, "/")
	register := renderer.GetCurrentVDOM().Find(func(n *vdom.VNode) bool {
		return n.Tag == "a" && n.Attr("href") == "/register"
	})
	if register == nil || register.OnClick == nil {
		t.Fatal("Expected a clickable /register link")
	}

	// Act
	register.OnClick()

	// Assert
	if a.Router.CurrentPath() != "/register" {
		t.Errorf("Expected current path '/register', got '%s'", a.Router.CurrentPath())
	}
	if loc := history.Location(); loc != "/register" {
		t.Errorf("Expected location '/register', got '%s'", loc)
	}
	active := renderer.GetCurrentVDOM().FindAll(func(n *vdom.VNode) bool { return n.Attr("aria-current") == "page" })
	if len(active) != 1 || active[0].Attr("href") != "/register" {
		t.Errorf("Expected only the /register link to be active, got %d active links", len(active))
	}
}

func TestApp_BackRestoresPreviousPage(t *testing.T) {
	a, history, renderer := startApp(t, "/")
	if err := a.Router.Navigate("/profile"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}

	history.Back()

	if a.Router.CurrentPath() != "/" {
		t.Errorf("Expected current path '/', got '%s'", a.Router.CurrentPath())
	}
	if got := displayedPages(renderer.GetCurrentVDOM()); len(got) != 1 || got[0] != "home" {
		t.Errorf("Expected Home after Back, got %v", got)
	}
}

func TestApp_LayoutPersistsAcrossNavigation(t *testing.T) {
	a, _, renderer := startApp(t, "/")
	layout := a.Layout

	for _, path := range []string{"/login", "/profile"} {
		if err := a.Router.Navigate(path); err != nil {
			t.Fatalf("Navigate(%s) failed: %v", path, err)
		}
	}

	if a.Layout != layout {
		t.Error("Expected the same layout instance")
	}
	if layout.ActivePath != "/profile" {
		t.Errorf("Expected layout to track '/profile', got '%s'", layout.ActivePath)
	}
	title := renderer.GetCurrentVDOM().Find(func(n *vdom.VNode) bool { return n.Tag == "h1" })
	if title == nil || title.Content != a.Config.Title {
		t.Errorf("Expected layout title '%s'", a.Config.Title)
	}
}

func TestNew_BuildsIndependentRouters(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	first := New(cfg, router.NewMemoryHistory(router.PathMode, "/", "/"))
	second := New(cfg, router.NewMemoryHistory(router.PathMode, "/", "/"))

	if first.Router == second.Router {
		t.Error("Expected each App to own its router")
	}
}
