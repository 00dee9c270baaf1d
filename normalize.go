package gltext

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode Normalization Form C. Composing
// combining sequences before rendering maps accented characters to
// their precomposed code points, which the atlas can rasterize as
// single glyphs. Rendering does not normalize implicitly; apply this
// to input from sources that may decompose, such as macOS file paths.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
