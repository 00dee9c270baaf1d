package gltext

import (
	"testing"

	"github.com/gogpu/gltext/internal/gl"
)

// scribble puts recognizable values into every piece of state the
// guard must preserve.
func scribble(g *fakeGL) {
	g.program = 91
	g.arrayBuffer = 92
	g.vertexArray = 93
	g.blend = false
	g.depthTest = true
	g.blendSrcRGB, g.blendDstRGB = 0x301, 0x306
	g.blendSrcAlpha, g.blendDstAlpha = 0x302, 0x307
	g.activeUnit = gl.Texture0 + 2
	g.texBinding[gl.Texture0+2] = 94
	reserved := gl.Texture0 + gl.Enum(g.maxUnits-1)
	g.texBinding[reserved] = 95
	g.unpackAlign = 4
}

func TestRenderTextRestoresState(t *testing.T) {
	f, g := newTestFont(t, 16)

	scribble(g)
	before := g.pipeline()

	err := f.RenderText("Hi €", Color{1, 0, 0, 1}, Vec2{800, 600}, Vec2{10, 20}, Left|Top)
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}

	if after := g.pipeline(); after != before {
		t.Errorf("pipeline state changed:\nbefore %v\nafter  %v", before, after)
	}
	if len(g.draws) != 2 {
		t.Fatalf("got %d draw calls, want 2 (one per atlas page)", len(g.draws))
	}
}

func TestRenderTextEmptyRestoresState(t *testing.T) {
	f, g := newTestFont(t, 16)

	scribble(g)
	before := g.pipeline()

	if err := f.RenderText("", Color{1, 1, 1, 1}, Vec2{800, 600}, Vec2{}, 0); err != nil {
		t.Fatalf("RenderText: %v", err)
	}

	if after := g.pipeline(); after != before {
		t.Errorf("pipeline state changed by empty render:\nbefore %v\nafter  %v", before, after)
	}
	if len(g.draws) != 0 {
		t.Errorf("empty render issued %d draw calls", len(g.draws))
	}
}

func TestRenderDrawCalls(t *testing.T) {
	f, g := newTestFont(t, 16)

	if err := f.RenderText("a€", Color{1, 1, 1, 1}, Vec2{800, 600}, Vec2{}, 0); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if len(g.draws) != 2 {
		t.Fatalf("got %d draw calls, want 2", len(g.draws))
	}

	var total int32
	for i, d := range g.draws {
		if d.mode != gl.Triangles {
			t.Errorf("draw %d mode = %#x, want TRIANGLES", i, d.mode)
		}
		if d.vao != f.vao {
			t.Errorf("draw %d used vertex array %d, want %d", i, d.vao, f.vao)
		}
		if d.program != shared.program {
			t.Errorf("draw %d used program %d, want %d", i, d.program, shared.program)
		}
		total += d.count
	}
	if total != 12 {
		t.Errorf("drew %d vertices, want 12", total)
	}
	if g.draws[0].texture == g.draws[1].texture {
		t.Error("both pages drew with the same texture")
	}
}

func TestRenderUsesReservedTextureUnit(t *testing.T) {
	f, g := newTestFont(t, 16)

	if err := f.RenderText("x", Color{1, 1, 1, 1}, Vec2{800, 600}, Vec2{}, 0); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	if want := g.maxUnits - 1; shared.texUnit != want {
		t.Errorf("reserved unit = %d, want %d", shared.texUnit, want)
	}
	// The sampler uniform was pointed at the reserved unit during
	// program setup.
	if got := g.uniforms[3]; len(got) != 1 || int32(got[0]) != shared.texUnit {
		t.Errorf("font_page uniform = %v, want [%d]", got, shared.texUnit)
	}
}

func TestRenderColorUniform(t *testing.T) {
	f, g := newTestFont(t, 16)

	c := Color{0.25, 0.5, 0.75, 0.5}
	if err := f.RenderText("x", c, Vec2{800, 600}, Vec2{}, 0); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	got := g.uniforms[2]
	if len(got) != 4 || got[0] != c[0] || got[1] != c[1] || got[2] != c[2] || got[3] != c[3] {
		t.Errorf("color uniform = %v, want %v", got, c)
	}
}

func TestRenderTextMatPassesMatrixThrough(t *testing.T) {
	f, g := newTestFont(t, 16)

	var mat Mat4
	for i := range mat {
		mat[i] = float32(i)
	}
	if err := f.RenderTextMat("x", Color{1, 1, 1, 1}, mat); err != nil {
		t.Fatalf("RenderTextMat: %v", err)
	}
	got := g.uniforms[1]
	if len(got) != 16 {
		t.Fatalf("matrix uniform has %d floats", len(got))
	}
	for i := range mat {
		if got[i] != mat[i] {
			t.Fatalf("matrix uniform[%d] = %v, want %v", i, got[i], mat[i])
		}
	}
}

func TestRenderTransientBufferOrphaned(t *testing.T) {
	f, g := newTestFont(t, 16)

	if err := f.RenderText("abc", Color{1, 1, 1, 1}, Vec2{800, 600}, Vec2{}, 0); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	buf := g.buffers[f.vbo]
	if buf.usage != gl.DynamicDraw {
		t.Errorf("transient buffer usage = %#x, want DYNAMIC_DRAW", buf.usage)
	}
	if want := 3 * 6 * vertStride; len(buf.data) != want {
		t.Errorf("transient buffer holds %d bytes, want %d", len(buf.data), want)
	}
	if buf.subs != 1 {
		t.Errorf("got %d BufferSubData calls, want 1", buf.subs)
	}
}
