package gltext

import (
	"testing"

	"github.com/gogpu/gltext/internal/gl"
)

// fakeGL implements gl.API as an in-memory GL context. It tracks the
// pipeline state the renderer saves and restores, retains texture and
// buffer contents, and records draw calls.
type fakeGL struct {
	nextName uint32

	program     uint32
	arrayBuffer uint32
	vertexArray uint32

	blend         bool
	depthTest     bool
	blendSrcRGB   gl.Enum
	blendDstRGB   gl.Enum
	blendSrcAlpha gl.Enum
	blendDstAlpha gl.Enum

	activeUnit  gl.Enum
	texBinding  map[gl.Enum]uint32
	maxUnits    int32
	unpackAlign int32

	buffers  map[uint32]*fakeBuffer
	textures map[uint32]*fakeTexture
	vaos     map[uint32]bool
	shaders  map[uint32]gl.Enum
	programs map[uint32]bool

	uniforms map[int32][]float32

	draws      []fakeDraw
	texUploads int

	failCompile gl.Enum // shader stage forced to fail, 0 for none
	failLink    bool
}

type fakeBuffer struct {
	data    []byte
	usage   gl.Enum
	subs    int // BufferSubData calls
	respecs int // BufferData calls
}

type fakeTexture struct {
	width, height int32
	pix           []byte
	params        map[gl.Enum]int32
	mipmapped     bool
	uploadAlign   int32
}

type fakeDraw struct {
	mode         gl.Enum
	first, count int32
	program      uint32
	vao          uint32
	texture      uint32 // bound on the active unit at draw time
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		activeUnit:    gl.Texture0,
		texBinding:    map[gl.Enum]uint32{},
		maxUnits:      8,
		unpackAlign:   4,
		blendSrcRGB:   1,
		blendDstRGB:   0,
		blendSrcAlpha: 1,
		blendDstAlpha: 0,
		buffers:       map[uint32]*fakeBuffer{},
		textures:      map[uint32]*fakeTexture{},
		vaos:          map[uint32]bool{},
		shaders:       map[uint32]gl.Enum{},
		programs:      map[uint32]bool{},
		uniforms:      map[int32][]float32{},
	}
}

// withFakeGL routes the shared renderer at a fresh fake context and
// isolates the process-wide singleton between tests.
func withFakeGL(t *testing.T) *fakeGL {
	t.Helper()
	g := newFakeGL()
	prev := newBackend
	newBackend = func() gl.API { return g }
	t.Cleanup(func() {
		newBackend = prev
		shared = nil
		sharedRefs = 0
	})
	return g
}

// pipeline returns the state the guard is responsible for, in a
// comparable form.
func (g *fakeGL) pipeline() [12]uint32 {
	return [12]uint32{
		g.program,
		g.arrayBuffer,
		g.vertexArray,
		b2u(g.blend),
		b2u(g.depthTest),
		uint32(g.blendSrcRGB),
		uint32(g.blendDstRGB),
		uint32(g.blendSrcAlpha),
		uint32(g.blendDstAlpha),
		uint32(g.activeUnit),
		g.texBinding[g.activeUnit],
		uint32(g.unpackAlign),
	}
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (g *fakeGL) name() uint32 {
	g.nextName++
	return g.nextName
}

func (g *fakeGL) GetInteger(pname gl.Enum) int32 {
	switch pname {
	case gl.CurrentProgram:
		return int32(g.program)
	case gl.ArrayBufferBinding:
		return int32(g.arrayBuffer)
	case gl.VertexArrayBinding:
		return int32(g.vertexArray)
	case gl.BlendSrcRGB:
		return int32(g.blendSrcRGB)
	case gl.BlendDstRGB:
		return int32(g.blendDstRGB)
	case gl.BlendSrcAlpha:
		return int32(g.blendSrcAlpha)
	case gl.BlendDstAlpha:
		return int32(g.blendDstAlpha)
	case gl.ActiveTextureUnit:
		return int32(g.activeUnit)
	case gl.TextureBinding2D:
		return int32(g.texBinding[g.activeUnit])
	case gl.MaxTextureImageUnits:
		return g.maxUnits
	case gl.UnpackAlignment:
		return g.unpackAlign
	}
	return 0
}

func (g *fakeGL) Enable(cap gl.Enum) {
	switch cap {
	case gl.Blend:
		g.blend = true
	case gl.DepthTest:
		g.depthTest = true
	}
}

func (g *fakeGL) Disable(cap gl.Enum) {
	switch cap {
	case gl.Blend:
		g.blend = false
	case gl.DepthTest:
		g.depthTest = false
	}
}

func (g *fakeGL) IsEnabled(cap gl.Enum) bool {
	switch cap {
	case gl.Blend:
		return g.blend
	case gl.DepthTest:
		return g.depthTest
	}
	return false
}

func (g *fakeGL) BlendFunc(src, dst gl.Enum) {
	g.BlendFuncSeparate(src, dst, src, dst)
}

func (g *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	g.blendSrcRGB, g.blendDstRGB = srcRGB, dstRGB
	g.blendSrcAlpha, g.blendDstAlpha = srcAlpha, dstAlpha
}

func (g *fakeGL) DrawArrays(mode gl.Enum, first, count int32) {
	g.draws = append(g.draws, fakeDraw{
		mode:    mode,
		first:   first,
		count:   count,
		program: g.program,
		vao:     g.vertexArray,
		texture: g.texBinding[g.activeUnit],
	})
}

func (g *fakeGL) CreateBuffer() uint32 {
	n := g.name()
	g.buffers[n] = &fakeBuffer{}
	return n
}

func (g *fakeGL) DeleteBuffer(buf uint32)              { delete(g.buffers, buf) }
func (g *fakeGL) BindBuffer(_ gl.Enum, buf uint32)     { g.arrayBuffer = buf }
func (g *fakeGL) CreateVertexArray() uint32            { n := g.name(); g.vaos[n] = true; return n }
func (g *fakeGL) DeleteVertexArray(arr uint32)         { delete(g.vaos, arr) }
func (g *fakeGL) BindVertexArray(arr uint32)           { g.vertexArray = arr }
func (g *fakeGL) EnableVertexAttribArray(index uint32) {}

func (g *fakeGL) VertexAttribPointer(index uint32, size int32, xtype gl.Enum, normalized bool, stride, offset int32) {
}

func (g *fakeGL) BufferData(_ gl.Enum, size int, data []byte, usage gl.Enum) {
	b := g.buffers[g.arrayBuffer]
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
	b.respecs++
}

func (g *fakeGL) BufferSubData(_ gl.Enum, offset int, data []byte) {
	b := g.buffers[g.arrayBuffer]
	copy(b.data[offset:], data)
	b.subs++
}

func (g *fakeGL) CreateTexture() uint32 {
	n := g.name()
	g.textures[n] = &fakeTexture{params: map[gl.Enum]int32{}}
	return n
}

func (g *fakeGL) DeleteTexture(tex uint32)          { delete(g.textures, tex) }
func (g *fakeGL) BindTexture(_ gl.Enum, tex uint32) { g.texBinding[g.activeUnit] = tex }
func (g *fakeGL) ActiveTexture(unit gl.Enum)        { g.activeUnit = unit }

func (g *fakeGL) TexImage2D(_ gl.Enum, level, internalFormat, width, height int32, format, xtype gl.Enum, data []byte) {
	t := g.textures[g.texBinding[g.activeUnit]]
	t.width, t.height = width, height
	t.pix = make([]byte, len(data))
	copy(t.pix, data)
	t.uploadAlign = g.unpackAlign
	g.texUploads++
}

func (g *fakeGL) TexParameteri(_, pname gl.Enum, param int32) {
	g.textures[g.texBinding[g.activeUnit]].params[pname] = param
}

func (g *fakeGL) GenerateMipmap(_ gl.Enum) {
	g.textures[g.texBinding[g.activeUnit]].mipmapped = true
}

func (g *fakeGL) PixelStorei(pname gl.Enum, param int32) {
	if pname == gl.UnpackAlignment {
		g.unpackAlign = param
	}
}

func (g *fakeGL) CreateShader(xtype gl.Enum) uint32 {
	n := g.name()
	g.shaders[n] = xtype
	return n
}

func (g *fakeGL) DeleteShader(shader uint32)             { delete(g.shaders, shader) }
func (g *fakeGL) ShaderSource(shader uint32, src string) {}
func (g *fakeGL) CompileShader(shader uint32)            {}

func (g *fakeGL) GetShaderi(shader uint32, pname gl.Enum) int32 {
	if pname == gl.CompileStatus && g.shaders[shader] == g.failCompile {
		return 0
	}
	return 1
}

func (g *fakeGL) GetShaderInfoLog(shader uint32) string { return "forced compile failure" }

func (g *fakeGL) CreateProgram() uint32 {
	n := g.name()
	g.programs[n] = true
	return n
}

func (g *fakeGL) DeleteProgram(program uint32)                       { delete(g.programs, program) }
func (g *fakeGL) AttachShader(program, shader uint32)                {}
func (g *fakeGL) DetachShader(program, shader uint32)                {}
func (g *fakeGL) BindAttribLocation(program, index uint32, n string) {}
func (g *fakeGL) LinkProgram(program uint32)                         {}

func (g *fakeGL) GetProgrami(program uint32, pname gl.Enum) int32 {
	if pname == gl.LinkStatus && g.failLink {
		return 0
	}
	return 1
}

func (g *fakeGL) GetProgramInfoLog(program uint32) string { return "forced link failure" }
func (g *fakeGL) UseProgram(program uint32)               { g.program = program }
func (g *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	// Stable nonzero locations per uniform name.
	switch name {
	case "model_view_projection":
		return 1
	case "color":
		return 2
	case "font_page":
		return 3
	}
	return -1
}

func (g *fakeGL) Uniform1i(location, v int32) {
	g.uniforms[location] = []float32{float32(v)}
}

func (g *fakeGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	g.uniforms[location] = []float32{v0, v1, v2, v3}
}

func (g *fakeGL) UniformMatrix4fv(location int32, value [16]float32) {
	g.uniforms[location] = value[:]
}
