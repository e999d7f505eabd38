// Package geometry provides the canvas coordinate types and the grid snap
// math shared by the editor store and its drag collaborators.
//
// All values are in canvas space: unzoomed, unpanned, treated as pixels.
package geometry

import "math"

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is the extent of an element.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle, used for artboard bounds.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width &&
		p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Snap rounds value to the nearest multiple of gridSize.
// Halves round toward positive infinity, so -12 on a grid of 8 snaps to -8.
// A non-positive grid size leaves value unchanged.
func Snap(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Floor(value/gridSize+0.5) * gridSize
}

// SnapPoint snaps each axis of p independently.
func SnapPoint(p Point, gridSize float64) Point {
	return Point{X: Snap(p.X, gridSize), Y: Snap(p.Y, gridSize)}
}

// SnapSize snaps each dimension of s independently.
// No minimum is enforced; that is the drag handler's job.
func SnapSize(s Size, gridSize float64) Size {
	return Size{Width: Snap(s.Width, gridSize), Height: Snap(s.Height, gridSize)}
}

// EffectiveGrid returns the grid size used for snapping. Disabled snapping
// uses a grid of 1 so both cases share the same rounding path.
func EffectiveGrid(snapToGrid bool, gridSize float64) float64 {
	if !snapToGrid {
		return 1
	}
	return gridSize
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
