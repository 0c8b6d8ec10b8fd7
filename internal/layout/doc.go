// Package layout implements the flexbox layout engine that produces the
// natural, untransformed frame of every element.
//
// All rectangles are absolute: the root is placed at the origin and every
// descendant is positioned in that same space, so frames measured in
// unrelated subtrees can be compared directly. Types are re-exported through
// the root matchgeo package.
package layout
