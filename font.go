package gltext

import (
	"fmt"
	"os"

	"github.com/gogpu/gltext/internal/gl"
)

// vertStride is the byte stride of one interleaved vertex.
const vertStride = floatsPerVert * 4

// Font renders text in one typeface at one pixel size. It owns the
// glyph atlas pages for that size plus a scratch vertex buffer for
// transient rendering, and shares the shader program with every other
// Font in the process.
//
// A Font must be created, used, and closed on the thread that owns the
// GL context.
type Font struct {
	c      *common
	rz     *rasterizer
	pages  map[uint32]*glyphPage
	vao    uint32
	vbo    uint32
	gen    int // bumped by Resize; Text rebuilds on mismatch
	closed bool
}

// NewFont opens a font file and prepares it for rendering at the given
// pixel size. A GL context must be current.
func NewFont(path string, size uint) (*Font, error) {
	return NewFontWithOptions(path, size, FaceOptions{})
}

// NewFontWithOptions is NewFont with explicit rasterization options.
func NewFontWithOptions(path string, size uint, opts FaceOptions) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontOpen, err)
	}
	return NewFontFromBytesWithOptions(data, size, opts)
}

// NewFontFromBytes is NewFont for font data already in memory. The
// data is retained and must not be modified afterwards.
func NewFontFromBytes(data []byte, size uint) (*Font, error) {
	return NewFontFromBytesWithOptions(data, size, FaceOptions{})
}

// NewFontFromBytesWithOptions is NewFontFromBytes with explicit
// rasterization options.
func NewFontFromBytesWithOptions(data []byte, size uint, opts FaceOptions) (*Font, error) {
	rz, err := newRasterizer(data, size, opts)
	if err != nil {
		return nil, err
	}
	c, err := acquireCommon()
	if err != nil {
		return nil, err
	}

	f := &Font{c: c, rz: rz, pages: map[uint32]*glyphPage{}}
	api := c.api

	prevVAO := uint32(api.GetInteger(gl.VertexArrayBinding))
	prevBuf := uint32(api.GetInteger(gl.ArrayBufferBinding))

	f.vao = api.CreateVertexArray()
	f.vbo = api.CreateBuffer()
	api.BindVertexArray(f.vao)
	api.BindBuffer(gl.ArrayBuffer, f.vbo)
	configureVertexLayout(api)

	api.BindVertexArray(prevVAO)
	api.BindBuffer(gl.ArrayBuffer, prevBuf)

	Logger().Debug("font opened", "size", size)
	return f, nil
}

// configureVertexLayout declares the interleaved position and texture
// coordinate attributes on the currently bound vertex array and
// buffer.
func configureVertexLayout(api gl.API) {
	api.EnableVertexAttribArray(0)
	api.EnableVertexAttribArray(1)
	api.VertexAttribPointer(0, 2, gl.Float, false, vertStride, 0)
	api.VertexAttribPointer(1, 2, gl.Float, false, vertStride, 8)
}

// Size returns the current pixel size.
func (f *Font) Size() uint { return f.rz.size }

// LineHeight returns the vertical advance between successive baselines
// in pixels.
func (f *Font) LineHeight() float32 { return f.rz.lineHeight }

// Resize changes the pixel size and discards every atlas page so they
// rebuild on demand at the new size. Resizing to the current size is a
// no-op that keeps the existing pages. On error the Font keeps its
// previous size and pages. Text objects built from this Font lay
// themselves out again the next time they render.
func (f *Font) Resize(size uint) error {
	if f.closed {
		return ErrClosed
	}
	if size == f.rz.size {
		return nil
	}
	if err := f.rz.setSize(size); err != nil {
		return err
	}
	f.clearPages()
	f.gen++
	Logger().Debug("font resized", "size", size)
	return nil
}

// Close frees the atlas pages and GL objects. It is idempotent; any
// other use of a closed Font fails with ErrClosed.
func (f *Font) Close() error {
	if f.closed {
		return nil
	}
	f.clearPages()
	f.c.api.DeleteBuffer(f.vbo)
	f.c.api.DeleteVertexArray(f.vao)
	releaseCommon()
	f.closed = true
	return nil
}

func (f *Font) clearPages() {
	for _, p := range f.pages {
		p.destroy(f.c.api)
	}
	clear(f.pages)
}

// getPage returns the atlas page covering code points page<<8 through
// page<<8+255, building and uploading it on first use.
func (f *Font) getPage(page uint32) *glyphPage {
	p, ok := f.pages[page]
	if !ok {
		p = buildPage(f.c.api, f.rz, page)
		f.pages[page] = p
	}
	return p
}

// RenderText lays out and draws text in a single call. win is the
// viewport size in pixels, pos the anchor position with Y growing
// downward. The pipeline state is restored before returning.
//
// For text drawn every frame without changing, a Text object avoids
// the per-call layout and upload.
func (f *Font) RenderText(text string, color Color, win, pos Vec2, align Align) error {
	return f.RenderTextRotated(text, color, win, pos, 0, align)
}

// RenderTextRotated is RenderText with a rotation of rot radians about
// the anchor point.
func (f *Font) RenderTextRotated(text string, color Color, win, pos Vec2, rot float32, align Align) error {
	if f.closed {
		return ErrClosed
	}
	lay := f.buildLayout(DecodeString(text))
	off := alignOffset(align, lay.box)
	f.render(lay.verts, lay.ranges, color, screenTransform(win.X(), win.Y(), pos, rot, off))
	return nil
}

// RenderTextMat draws text with a caller-supplied transform applied to
// the raw layout coordinates. No alignment offset is applied.
func (f *Font) RenderTextMat(text string, color Color, mat Mat4) error {
	if f.closed {
		return ErrClosed
	}
	lay := f.buildLayout(DecodeString(text))
	f.render(lay.verts, lay.ranges, color, mat)
	return nil
}

// Measure lays out text and returns its ink bounding box relative to
// the pen origin, without drawing. Atlas pages for the text are built
// as a side effect, so a GL context must be current.
func (f *Font) Measure(text string) (BBox, error) {
	if f.closed {
		return BBox{}, ErrClosed
	}
	return f.buildLayout(DecodeString(text)).box, nil
}

// render uploads transient vertex data into the Font's scratch buffer
// and draws it, bracketed by the state guard.
func (f *Font) render(verts []float32, ranges []pageRange, color Color, mvp Mat4) {
	api := f.c.api
	st := saveState(api, f.c.texUnit)
	if len(verts) > 0 {
		api.BindBuffer(gl.ArrayBuffer, f.vbo)
		b := gl.F32Bytes(verts)
		// Orphan the old storage so the driver never stalls on a
		// buffer still in flight.
		api.BufferData(gl.ArrayBuffer, len(b), nil, gl.DynamicDraw)
		api.BufferSubData(gl.ArrayBuffer, 0, b)
		f.drawRanges(f.vao, ranges, color, mvp)
	}
	st.restore(api)
}
