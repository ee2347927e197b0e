//go:build js && wasm && !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/nojs-social/console"
)

// In production builds lifecycle panics are recovered and logged so one
// broken component does not take the whole application down.

func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
	}
}

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}
