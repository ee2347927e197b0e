//go:build js && wasm && dev

package runtime

// In dev builds lifecycle panics propagate to aid debugging and fast failure.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	cleaner.OnDestroy()
}
