// Package snapshot rasterizes render passes to PNG images.
//
// A Canvas is a matchgeo.Surface backed by a gg software context: each cell
// becomes a block of pixels, fills and borders are drawn as rectangles and
// text uses the fixed 7x13 font from golang.org/x/image. Render replays a
// PassReport's display list onto a fresh canvas and can outline the
// geometry table and mirror frames on top, which makes one-pass latency
// visible in a sequence of frames.
package snapshot
