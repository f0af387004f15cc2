//go:build js && wasm

// Command staticnoise-web is the browser build of the noise animation.
// Build with GOOS=js GOARCH=wasm and serve next to index.html and
// wasm_exec.js.
// Copy wasm_exec.js from $(go env GOROOT)/lib/wasm/wasm_exec.js.
package main

import (
	"context"
	"log"

	"github.com/richinsley/staticnoise/animation"
	"github.com/richinsley/staticnoise/web"
)

func main() {
	canvas, err := web.NewCanvas("canvas")
	if err != nil {
		log.Fatalf("Failed to set up canvas: %v", err)
	}
	defer canvas.Release()

	drawer, err := web.NewDrawer(canvas.GL())
	if err != nil {
		log.Fatalf("Failed to create noise program: %v", err)
	}
	defer drawer.Release()

	loop := animation.NewLoop(canvas, drawer)
	w, h := canvas.GetFramebufferSize()
	log.Printf("Rendering static noise at %dx%d. Click to pause.", w, h)

	if err := web.Run(context.Background(), loop); err != nil {
		log.Printf("Render loop stopped: %v", err)
	}
}
