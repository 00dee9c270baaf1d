package gltext

// Align selects how rendered text is anchored to its position. A value
// combines one horizontal and one vertical flag; OriginBaseline is the
// zero value for both axes, so Align(0) anchors the pen origin of the
// first line (the classic typographic reference point).
type Align int

// Horizontal alignment flags. At most one may be set.
const (
	// OriginHoriz anchors at the pen origin, which can fall inside or
	// outside the ink depending on the first glyph's bearing.
	OriginHoriz Align = 0
	// Left anchors at the left edge of the layout box.
	Left Align = 1
	// Right anchors at the right edge of the layout box.
	Right Align = 2
	// CenterHoriz anchors at the horizontal midpoint of the layout box.
	CenterHoriz Align = 3
)

// Vertical alignment flags. At most one may be set.
const (
	// OriginVert anchors at the baseline of the first line.
	OriginVert Align = 0
	// Top anchors at the top edge of the layout box.
	Top Align = 4
	// Bottom anchors at the bottom edge of the layout box.
	Bottom Align = 8
	// CenterVert anchors at the vertical midpoint of the layout box.
	CenterVert Align = 0xC
)

const (
	horizMask Align = 0x3
	vertMask  Align = 0xC
)
