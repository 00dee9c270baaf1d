package gltext

import (
	"github.com/gogpu/gltext/internal/gl"
)

// Text is a cached rendering of one string: the layout runs once and
// the vertices live in a static GL buffer, so drawing it every frame
// costs one state swap and a draw call per atlas page. Use it for text
// that persists across frames; for one-off strings Font.RenderText is
// simpler.
//
// A Text holds its Font and becomes unusable once that Font is closed.
// If the Font is resized, the Text lays itself out again at the new
// size on its next render.
type Text struct {
	font   *Font
	text   string
	vao    uint32
	vbo    uint32
	ranges []pageRange
	box    BBox
	gen    int
	closed bool
}

// NewText lays out text with f and uploads the geometry. A GL context
// must be current.
func NewText(f *Font, text string) (*Text, error) {
	if f.closed {
		return nil, ErrClosed
	}
	// The shared program must outlive this object even if fonts come
	// and go, so it holds its own reference.
	c, err := acquireCommon()
	if err != nil {
		return nil, err
	}

	t := &Text{font: f, text: text}
	api := c.api

	prevVAO := uint32(api.GetInteger(gl.VertexArrayBinding))
	prevBuf := uint32(api.GetInteger(gl.ArrayBufferBinding))

	t.vao = api.CreateVertexArray()
	t.vbo = api.CreateBuffer()
	api.BindVertexArray(t.vao)
	api.BindBuffer(gl.ArrayBuffer, t.vbo)
	configureVertexLayout(api)
	api.BindVertexArray(prevVAO)
	api.BindBuffer(gl.ArrayBuffer, prevBuf)

	t.rebuild()
	return t, nil
}

// Box returns the ink bounding box of the cached layout, relative to
// the pen origin.
func (t *Text) Box() BBox { return t.box }

// SetText replaces the string and rebuilds the cached geometry.
func (t *Text) SetText(text string) error {
	if t.closed || t.font.closed {
		return ErrClosed
	}
	t.text = text
	t.rebuild()
	return nil
}

// SetFont retargets the Text at another Font and rebuilds, picking up
// that Font's typeface, size, and atlas pages.
func (t *Text) SetFont(f *Font) error {
	if t.closed || f.closed {
		return ErrClosed
	}
	t.font = f
	t.rebuild()
	return nil
}

// rebuild lays the stored string out again and replaces the buffer
// contents. The buffer binding it uses is restored.
func (t *Text) rebuild() {
	lay := t.font.buildLayout(DecodeString(t.text))
	api := t.font.c.api

	prevBuf := uint32(api.GetInteger(gl.ArrayBufferBinding))
	api.BindBuffer(gl.ArrayBuffer, t.vbo)
	b := gl.F32Bytes(lay.verts)
	api.BufferData(gl.ArrayBuffer, len(b), b, gl.StaticDraw)
	api.BindBuffer(gl.ArrayBuffer, prevBuf)

	t.ranges = lay.ranges
	t.box = lay.box
	t.gen = t.font.gen
}

// Render draws the cached geometry. Parameters match Font.RenderText.
func (t *Text) Render(color Color, win, pos Vec2, align Align) error {
	return t.RenderRotated(color, win, pos, 0, align)
}

// RenderRotated is Render with a rotation of rot radians about the
// anchor point.
func (t *Text) RenderRotated(color Color, win, pos Vec2, rot float32, align Align) error {
	if t.closed || t.font.closed {
		return ErrClosed
	}
	off := alignOffset(align, t.box)
	t.draw(color, screenTransform(win.X(), win.Y(), pos, rot, off))
	return nil
}

// RenderMat draws the cached geometry with a caller-supplied
// transform. No alignment offset is applied.
func (t *Text) RenderMat(color Color, mat Mat4) error {
	if t.closed || t.font.closed {
		return ErrClosed
	}
	t.draw(color, mat)
	return nil
}

func (t *Text) draw(color Color, mvp Mat4) {
	if t.gen != t.font.gen {
		// The Font was resized after this geometry was built; the old
		// vertices would sample the rebuilt pages at the wrong cells.
		t.rebuild()
	}
	api := t.font.c.api
	st := saveState(api, t.font.c.texUnit)
	if len(t.ranges) > 0 {
		t.font.drawRanges(t.vao, t.ranges, color, mvp)
	}
	st.restore(api)
}

// Close frees the GL objects. It is idempotent and independent of the
// Font's lifetime.
func (t *Text) Close() error {
	if t.closed {
		return nil
	}
	api := t.font.c.api
	api.DeleteBuffer(t.vbo)
	api.DeleteVertexArray(t.vao)
	releaseCommon()
	t.closed = true
	return nil
}
