// Package layout holds the geometry value types shared by the lane tracker
// and the grid policy.
//
// Rectangles, padding, and sizes are plain values. [Orientation] names the
// main (scroll) axis of a grid and provides the main/cross axis accessors
// used everywhere a computation would otherwise branch on vertical versus
// horizontal. [MeasureSpec] is the sizing constraint handed to an item for
// one axis during a measure pass.
//
// Types are re-exported through the root lanegrid package for public use.
package layout
