//go:build js && wasm

package main

import (
	"errors"
	"syscall/js"

	"github.com/vcrobe/nojs-social/console"
	"github.com/vcrobe/nojs-social/internal/app"
	"github.com/vcrobe/nojs-social/router"
	"github.com/vcrobe/nojs-social/runtime"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		console.Error("Invalid app config:", err.Error())
		panic(err)
	}
	js.Global().Get("document").Set("title", cfg.Title)

	history := router.NewBrowserHistory(cfg.HistoryMode(), cfg.Base)
	application := app.New(cfg, history)

	// The router is the renderer's navigation manager, and the renderer is
	// injected back into every page the router creates.
	renderer := runtime.NewRenderer(application.Router, cfg.Mount)
	application.Attach(renderer)

	renderer.SetCurrentComponent(application.Shell, "app-shell")
	renderer.ReRender()

	// An unmatched deep link leaves the shell mounted with an empty slot; the
	// navigation links and back/forward keep working.
	if err := application.Start(); err != nil {
		if !errors.Is(err, router.ErrRouteNotFound) {
			console.Error("Failed to start router:", err.Error())
			panic(err)
		}
		console.Error("No route for the initial location:", err.Error())
	}

	// Keep the Go program running
	select {}
}
