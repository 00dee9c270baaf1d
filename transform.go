package gltext

import "math"

// alignOffset returns the vector subtracted from vertex positions so
// that the chosen anchor of box lands on the render position. Baseline
// flags contribute zero on their axis.
func alignOffset(a Align, box BBox) Vec2 {
	var off Vec2
	switch a & horizMask {
	case Left:
		off[0] = box.Min.X()
	case Right:
		off[0] = box.Max.X()
	case CenterHoriz:
		off[0] = (box.Min.X() + box.Max.X()) / 2
	}
	switch a & vertMask {
	case Top:
		off[1] = box.Min.Y()
	case Bottom:
		off[1] = box.Max.Y()
	case CenterVert:
		off[1] = (box.Min.Y() + box.Max.Y()) / 2
	}
	return off
}

// screenTransform builds the model-view-projection matrix mapping
// layout-space vertices to clip space. It is the product of a pixel
// orthographic projection over a w×h viewport (origin upper-left, Y
// down), a translation to pos, a rotation by rot radians about the
// anchor, and a translation by -off moving the anchor to the origin.
// The product is written out directly rather than composed.
//
// rot follows the standard counterclockwise convention in Y-up
// coordinates, which reads as clockwise on a Y-down screen.
func screenTransform(w, h float32, pos Vec2, rot float32, off Vec2) Mat4 {
	s64, c64 := math.Sincos(float64(rot))
	sin, cos := float32(s64), float32(c64)

	var m Mat4
	m[0] = 2 * cos / w
	m[1] = -2 * sin / h
	m[4] = -2 * sin / w
	m[5] = -2 * cos / h
	m[10] = 1
	m[12] = -1 + 2*(pos.X()-cos*off.X()+sin*off.Y())/w
	m[13] = 1 - 2*(pos.Y()-sin*off.X()-cos*off.Y())/h
	m[15] = 1
	return m
}
