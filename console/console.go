//go:build js && wasm

package console

import (
	"syscall/js"
)

func Log(args ...any) {
	call("log", args)
}

func Warn(args ...any) {
	call("warn", args)
}

func Error(args ...any) {
	call("error", args)
}

func call(method string, args []any) {
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	console.Call(method, args...)
}
