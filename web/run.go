//go:build js && wasm

package web

import (
	"context"
	"syscall/js"

	"github.com/richinsley/staticnoise/animation"
)

// Run renders one loop step per animation frame until ctx is cancelled.
func Run(ctx context.Context, loop *animation.Loop) error {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		if ctx.Err() != nil {
			return nil
		}
		loop.Step()
		js.Global().Call("requestAnimationFrame", f)
		return nil
	})
	defer f.Release()

	js.Global().Call("requestAnimationFrame", f)
	<-ctx.Done()
	return ctx.Err()
}
