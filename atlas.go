package gltext

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gltext/internal/gl"
)

// A page covers 256 consecutive code points arranged in a 16×16 grid
// of cells, one texture per page.
const (
	pageGlyphs = 256
	pageCols   = 16
	pageRows   = 16
)

// glyphRecord holds the placement data for one glyph within its page.
// originX/originY locate the bitmap's upper-left corner inside the
// cell, in pixels from the cell's upper-left corner. box is the ink
// box relative to the pen origin with Y growing upward.
type glyphRecord struct {
	originX, originY int
	box              ibox
	advance          fixed.Int26_6
	index            truetype.Index
}

// glyphPage is one built atlas page: a greyscale texture plus the
// per-glyph records. Pages are built at most once and survive until
// the font is resized or closed.
type glyphPage struct {
	texture uint32
	records [pageGlyphs]glyphRecord
}

// buildPage rasterizes all 256 glyphs of a page into a single coverage
// bitmap and uploads it. Glyphs the face cannot rasterize leave their
// cell blank with zero metrics. The call restores the texture binding
// and unpack alignment it touched.
func buildPage(api gl.API, rz *rasterizer, page uint32) *glyphPage {
	cellW, cellH := rz.cell.width(), rz.cell.height()
	texW, texH := cellW*pageCols, cellH*pageRows
	pix := make([]byte, texW*texH)

	p := &glyphPage{}
	for i := 0; i < pageGlyphs; i++ {
		cp := rune(page<<8 | uint32(i))
		img, ok := rz.glyph(cp)
		if !ok {
			Logger().Warn("glyph rasterization failed",
				"codepoint", cp, "page", page)
			continue
		}
		rec := &p.records[i]
		rec.originX = -rz.cell.ulX + img.left
		rec.originY = rz.cell.ulY - img.top
		rec.box = ibox{
			ulX: img.left,
			ulY: img.top,
			lrX: img.left + img.width,
			lrY: img.top - img.height,
		}
		rec.advance = img.advance
		rec.index = img.index

		dstX := (i%pageCols)*cellW + rec.originX
		dstY := (i/pageCols)*cellH + rec.originY
		blit(pix, texW, texH, dstX, dstY, img)
	}

	prevTex := uint32(api.GetInteger(gl.TextureBinding2D))
	prevAlign := api.GetInteger(gl.UnpackAlignment)

	p.texture = api.CreateTexture()
	api.BindTexture(gl.Texture2D, p.texture)
	api.PixelStorei(gl.UnpackAlignment, 1)
	api.TexImage2D(gl.Texture2D, 0, int32(gl.Red), int32(texW), int32(texH),
		gl.Red, gl.UnsignedByte, pix)
	api.GenerateMipmap(gl.Texture2D)
	api.TexParameteri(gl.Texture2D, gl.TextureMinFilter, int32(gl.LinearMipmapLinear))
	api.TexParameteri(gl.Texture2D, gl.TextureMagFilter, int32(gl.Linear))
	api.TexParameteri(gl.Texture2D, gl.TextureWrapS, int32(gl.ClampToEdge))
	api.TexParameteri(gl.Texture2D, gl.TextureWrapT, int32(gl.ClampToEdge))

	api.PixelStorei(gl.UnpackAlignment, prevAlign)
	api.BindTexture(gl.Texture2D, prevTex)

	Logger().Debug("atlas page built",
		"page", page, "texture", p.texture, "width", texW, "height", texH)
	return p
}

// blit copies a glyph bitmap into the page image, dropping pixels that
// a hinted glyph pushes past its cell.
func blit(dst []byte, dstW, dstH, x, y int, g glyphImage) {
	for row := 0; row < g.height; row++ {
		dy := y + row
		if dy < 0 || dy >= dstH {
			continue
		}
		for col := 0; col < g.width; col++ {
			dx := x + col
			if dx < 0 || dx >= dstW {
				continue
			}
			dst[dy*dstW+dx] = g.pix[row*g.width+col]
		}
	}
}

func (p *glyphPage) destroy(api gl.API) {
	if p.texture != 0 {
		api.DeleteTexture(p.texture)
		p.texture = 0
	}
}
