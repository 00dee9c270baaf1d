package gltext

import "golang.org/x/image/font"

// FaceOptions tunes how glyphs are rasterized. The zero value is the
// default configuration: 72 DPI, so one point equals one pixel, and no
// outline hinting.
type FaceOptions struct {
	// DPI is the rasterization resolution in dots per inch. Zero
	// means 72.
	DPI float64

	// Hinting selects how glyph outlines are fitted to the pixel
	// grid. Hinted glyphs can overhang their font-wide cell slightly;
	// overhanging pixels are dropped at the atlas edge.
	Hinting font.Hinting
}
