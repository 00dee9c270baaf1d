package gltext

import "github.com/go-gl/mathgl/mgl32"

// Vec2 is a two-component float vector (position, size).
type Vec2 = mgl32.Vec2

// Color is an RGBA color with components conceptually in [0, 1].
// Components are not clamped.
type Color = mgl32.Vec4

// Mat4 is a column-major 4×4 float matrix.
type Mat4 = mgl32.Mat4

// BBox is an axis-aligned bounding box in screen-space pixels, where Y
// grows downward: Min is the upper-left corner, Max the lower-right.
type BBox struct {
	Min Vec2
	Max Vec2
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float32 { return b.Max.X() - b.Min.X() }

// Height returns the vertical extent of the box.
func (b BBox) Height() float32 { return b.Max.Y() - b.Min.Y() }

// ibox is an integer box in baseline-relative font units, where Y grows
// upward: ulY sits above lrY. Glyph ink boxes and the cell box use this
// orientation because the rasterizer reports bearings relative to the
// baseline.
type ibox struct {
	ulX, ulY int
	lrX, lrY int
}

func (b ibox) width() int  { return b.lrX - b.ulX }
func (b ibox) height() int { return b.ulY - b.lrY }
