// Package matchgeo implements shared-layout ("matched geometry") animation
// for a retained element tree.
//
// Elements tagged with the same slot through WithMatchedGeometry animate
// between each other's frames even when they live in unrelated parts of
// the tree. During a render pass every publisher reports its measured
// frame, the frames are merged into one GeometryTable per GeometryScope,
// and the table is published for the next pass. Mirrors read it and are
// drawn as overlays moved and resized onto their publisher.
//
// Users import this single package for the complete public API: the app
// and its render loop, element construction, layout types, reactive state
// and the geometry protocol itself.
package matchgeo
