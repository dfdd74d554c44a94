// Command shapeswasm builds the shapes core as a WebAssembly reactor.
//
// Build with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o shapes.wasm ./cmd/shapeswasm
//
// The module exports the host call surface (init, resize, render_frame,
// use_shape, ...). Every export returns an int32 status; see
// boundary.Status for the codes.
package main

func main() {}
