package app

import (
	_ "embed"

	"github.com/vcrobe/nojs-social/internal/app/layouts"
	"github.com/vcrobe/nojs-social/internal/config"
	"github.com/vcrobe/nojs-social/router"
	"github.com/vcrobe/nojs-social/runtime"
)

//go:embed app.toml
var appConfig []byte

// LoadConfig decodes the configuration compiled into the binary.
func LoadConfig() (*config.App, error) {
	return config.ParseApp(appConfig)
}

// App holds the objects built once at startup: the router, the persistent
// layout and the shell that swaps pages inside it.
type App struct {
	Config *config.App
	Router *router.Engine
	Layout *layouts.MainLayout
	Shell  *router.AppShell
}

// NewRouter creates the navigation controller over the application routes.
func NewRouter(history router.History) *router.Engine {
	return router.NewEngine(Routes(), history)
}

// New wires the router, layout and app shell. Nothing is rendered until the
// caller attaches a renderer and calls Start.
func New(cfg *config.App, history router.History) *App {
	engine := NewRouter(history)
	layout := &layouts.MainLayout{
		Title:  cfg.Title,
		Nav:    Navigation(),
		Router: engine,
	}
	return &App{
		Config: cfg,
		Router: engine,
		Layout: layout,
		Shell:  router.NewAppShell(layout),
	}
}

// Attach hands renderer to the router so pages it creates can re-render and navigate.
func (a *App) Attach(renderer runtime.Renderer) {
	a.Router.SetRenderer(renderer)
}

// Start mounts the page for the current location and keeps the shell in sync
// with later navigations.
func (a *App) Start() error {
	return a.Router.Start(a.Shell.SetPage)
}

// Stop detaches the router from browser history.
func (a *App) Stop() {
	a.Router.Cleanup()
}
