package runtime

// Initializer is implemented by components that need one-time setup before
// their first render.
type Initializer interface {
	OnInit()
}

// Cleaner is implemented by components that release resources (signal
// subscriptions, timers) once they leave the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies new props onto an existing instance so its internal
// state survives a parent re-render.
type PropUpdater interface {
	ApplyProps(source Component)
}

// NavigationManager is the router contract the renderer depends on.
type NavigationManager interface {
	// Navigate moves the application to path and updates the browser URL.
	Navigate(path string) error

	// Start reads the initial location, installs history listeners and
	// performs the first navigation.
	Start(onChange func(chain []Component, key string)) error

	// GetComponentForPath returns a fresh instance of the page declared for path.
	GetComponentForPath(path string) (Component, bool)
}
