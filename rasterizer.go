package gltext

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// defaultDPI makes one point equal one pixel, so the 26.6 scale is
// exactly size<<6.
const defaultDPI = 72

// Pairs probed once per face to detect kerning support. TrueType
// exposes no capability flag, so a face that kerns none of these is
// treated as unkerned and the per-pair lookups are skipped.
var kernProbes = [...][2]rune{{'A', 'V'}, {'T', 'o'}, {'T', 'a'}, {'Y', 'o'}, {'W', 'a'}, {'P', '.'}}

// glyphImage is a single rasterized glyph: an 8-bit coverage bitmap
// plus the metrics needed to place it. left and top are the bearings
// from the pen position to the bitmap's left edge and from the
// baseline up to its top edge.
type glyphImage struct {
	pix     []byte
	width   int
	height  int
	left    int
	top     int
	advance fixed.Int26_6
	index   truetype.Index
}

// rasterizer wraps a parsed TrueType font and a face at one pixel
// size. Resizing replaces the derived state atomically: a failed
// setSize leaves the previous face intact.
type rasterizer struct {
	ttf        *truetype.Font
	opts       FaceOptions
	face       font.Face
	size       uint
	scale      fixed.Int26_6
	cell       ibox
	lineHeight float32
	hasKern    bool
}

func newRasterizer(data []byte, size uint, opts FaceOptions) (*rasterizer, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		if strings.Contains(err.Error(), "cmap") {
			return nil, fmt.Errorf("%w: %v", ErrNoCharmap, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFontOpen, err)
	}
	if opts.DPI == 0 {
		opts.DPI = defaultDPI
	}
	r := &rasterizer{ttf: ttf, opts: opts}
	if err := r.setSize(size); err != nil {
		return nil, err
	}
	return r, nil
}

// setSize rebuilds the face and cell box for a new pixel size. On
// error the rasterizer is unchanged.
func (r *rasterizer) setSize(size uint) error {
	if size == 0 {
		return &SizeError{Size: size}
	}
	scale := fixed.Int26_6(math.Round(float64(size) * r.opts.DPI / defaultDPI * 64))
	b := r.ttf.Bounds(scale)

	// Cell box: the font-wide bbox in baseline-relative pixels, padded
	// by two pixels per side so linear filtering never samples a
	// neighboring glyph.
	cell := ibox{
		ulX: b.Min.X.Floor() - 2,
		ulY: b.Max.Y.Ceil() + 2,
		lrX: b.Max.X.Ceil() + 2,
		lrY: b.Min.Y.Floor() - 2,
	}
	if cell.width() <= 0 || cell.height() <= 0 {
		return &SizeError{Size: size}
	}

	face := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    float64(size),
		DPI:     r.opts.DPI,
		Hinting: r.opts.Hinting,
	})

	r.face = face
	r.size = size
	r.scale = scale
	r.cell = cell
	r.lineHeight = float32(r.face.Metrics().Height) / 64
	r.hasKern = r.probeKerning()
	return nil
}

func (r *rasterizer) probeKerning() bool {
	for _, p := range kernProbes {
		i0, i1 := r.ttf.Index(p[0]), r.ttf.Index(p[1])
		if i0 == 0 || i1 == 0 {
			continue
		}
		if r.ttf.Kern(r.scale, i0, i1) != 0 {
			return true
		}
	}
	return false
}

// glyph rasterizes one code point. ok is false when the face cannot
// produce a bitmap for it; callers leave the atlas cell blank and
// record zero metrics.
func (r *rasterizer) glyph(rn rune) (glyphImage, bool) {
	dr, mask, maskp, advance, ok := r.face.Glyph(fixed.Point26_6{}, rn)
	if !ok {
		return glyphImage{}, false
	}
	g := glyphImage{
		width:   dr.Dx(),
		height:  dr.Dy(),
		left:    dr.Min.X,
		top:     -dr.Min.Y,
		advance: advance,
		index:   r.ttf.Index(rn),
	}
	if g.width > 0 && g.height > 0 {
		g.pix = make([]byte, g.width*g.height)
		alpha, aok := mask.(*image.Alpha)
		if !aok {
			// The truetype face always yields *image.Alpha; fall back
			// to the generic path for any other mask type.
			for y := 0; y < g.height; y++ {
				for x := 0; x < g.width; x++ {
					_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
					g.pix[y*g.width+x] = byte(a >> 8)
				}
			}
			return g, true
		}
		for y := 0; y < g.height; y++ {
			src := alpha.Pix[(maskp.Y+y)*alpha.Stride+maskp.X:]
			copy(g.pix[y*g.width:(y+1)*g.width], src[:g.width])
		}
	}
	return g, true
}

// kern returns the kerning adjustment in 26.6 pixels between two glyph
// indices, zero when either glyph is missing or the face has no
// kerning data.
func (r *rasterizer) kern(i0, i1 truetype.Index) fixed.Int26_6 {
	if !r.hasKern || i0 == 0 || i1 == 0 {
		return 0
	}
	return r.ttf.Kern(r.scale, i0, i1)
}
