// Package layout holds the geometric value types shared by the element tree:
// points, sizes, rectangles, edge thickness and alignment.
//
// Every type is a small immutable value with arithmetic helpers only. Sizes
// and rectangles produced by the helpers never carry negative dimensions;
// underflow is clamped to zero. Types are re-exported through the root tuist
// package for public consumption.
package layout
