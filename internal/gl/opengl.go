package gl

import (
	"strings"
	"unsafe"

	ogl "github.com/go-gl/gl/v3.3-core/gl"
)

// OpenGL implements API on top of the go-gl OpenGL 3.3 core bindings.
//
// The caller is responsible for having a current context on the calling
// thread and for having loaded the GL function pointers (ogl.Init), both of
// which belong to whoever owns the window.
type OpenGL struct{}

var _ API = OpenGL{}

// New returns the go-gl backed implementation of API.
func New() API { return OpenGL{} }

// F32Bytes reinterprets a []float32 as its underlying bytes for buffer
// uploads. The returned slice aliases v.
func F32Bytes(v []float32) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*4)
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (OpenGL) GetInteger(pname Enum) int32 {
	var v int32
	ogl.GetIntegerv(uint32(pname), &v)
	return v
}

func (OpenGL) Enable(cap Enum)  { ogl.Enable(uint32(cap)) }
func (OpenGL) Disable(cap Enum) { ogl.Disable(uint32(cap)) }

func (OpenGL) IsEnabled(cap Enum) bool { return ogl.IsEnabled(uint32(cap)) }

func (OpenGL) BlendFunc(src, dst Enum) { ogl.BlendFunc(uint32(src), uint32(dst)) }

func (OpenGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	ogl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (OpenGL) DrawArrays(mode Enum, first, count int32) {
	ogl.DrawArrays(uint32(mode), first, count)
}

func (OpenGL) CreateBuffer() uint32 {
	var buf uint32
	ogl.GenBuffers(1, &buf)
	return buf
}

func (OpenGL) DeleteBuffer(buf uint32) { ogl.DeleteBuffers(1, &buf) }

func (OpenGL) BindBuffer(target Enum, buf uint32) { ogl.BindBuffer(uint32(target), buf) }

func (OpenGL) BufferData(target Enum, size int, data []byte, usage Enum) {
	ogl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (OpenGL) BufferSubData(target Enum, offset int, data []byte) {
	ogl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (OpenGL) CreateVertexArray() uint32 {
	var arr uint32
	ogl.GenVertexArrays(1, &arr)
	return arr
}

func (OpenGL) DeleteVertexArray(arr uint32) { ogl.DeleteVertexArrays(1, &arr) }

func (OpenGL) BindVertexArray(arr uint32) { ogl.BindVertexArray(arr) }

func (OpenGL) EnableVertexAttribArray(index uint32) { ogl.EnableVertexAttribArray(index) }

func (OpenGL) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride, offset int32) {
	ogl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, uintptr(offset))
}

func (OpenGL) CreateTexture() uint32 {
	var tex uint32
	ogl.GenTextures(1, &tex)
	return tex
}

func (OpenGL) DeleteTexture(tex uint32) { ogl.DeleteTextures(1, &tex) }

func (OpenGL) BindTexture(target Enum, tex uint32) { ogl.BindTexture(uint32(target), tex) }

func (OpenGL) ActiveTexture(unit Enum) { ogl.ActiveTexture(uint32(unit)) }

func (OpenGL) TexImage2D(target Enum, level, internalFormat, width, height int32, format, xtype Enum, data []byte) {
	ogl.TexImage2D(uint32(target), level, internalFormat, width, height, 0, uint32(format), uint32(xtype), ptr(data))
}

func (OpenGL) TexParameteri(target, pname Enum, param int32) {
	ogl.TexParameteri(uint32(target), uint32(pname), param)
}

func (OpenGL) GenerateMipmap(target Enum) { ogl.GenerateMipmap(uint32(target)) }

func (OpenGL) PixelStorei(pname Enum, param int32) { ogl.PixelStorei(uint32(pname), param) }

func (OpenGL) CreateShader(xtype Enum) uint32 { return ogl.CreateShader(uint32(xtype)) }

func (OpenGL) DeleteShader(shader uint32) { ogl.DeleteShader(shader) }

func (OpenGL) ShaderSource(shader uint32, source string) {
	src, free := ogl.Strs(source + "\x00")
	defer free()
	ogl.ShaderSource(shader, 1, src, nil)
}

func (OpenGL) CompileShader(shader uint32) { ogl.CompileShader(shader) }

func (OpenGL) GetShaderi(shader uint32, pname Enum) int32 {
	var v int32
	ogl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (OpenGL) GetShaderInfoLog(shader uint32) string {
	var length int32
	ogl.GetShaderiv(shader, ogl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	ogl.GetShaderInfoLog(shader, length, nil, ogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (OpenGL) CreateProgram() uint32 { return ogl.CreateProgram() }

func (OpenGL) DeleteProgram(program uint32) { ogl.DeleteProgram(program) }

func (OpenGL) AttachShader(program, shader uint32) { ogl.AttachShader(program, shader) }

func (OpenGL) DetachShader(program, shader uint32) { ogl.DetachShader(program, shader) }

func (OpenGL) BindAttribLocation(program, index uint32, name string) {
	ogl.BindAttribLocation(program, index, ogl.Str(name+"\x00"))
}

func (OpenGL) LinkProgram(program uint32) { ogl.LinkProgram(program) }

func (OpenGL) GetProgrami(program uint32, pname Enum) int32 {
	var v int32
	ogl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (OpenGL) GetProgramInfoLog(program uint32) string {
	var length int32
	ogl.GetProgramiv(program, ogl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	ogl.GetProgramInfoLog(program, length, nil, ogl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (OpenGL) UseProgram(program uint32) { ogl.UseProgram(program) }

func (OpenGL) GetUniformLocation(program uint32, name string) int32 {
	return ogl.GetUniformLocation(program, ogl.Str(name+"\x00"))
}

func (OpenGL) Uniform1i(location, v int32) { ogl.Uniform1i(location, v) }

func (OpenGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	ogl.Uniform4f(location, v0, v1, v2, v3)
}

func (OpenGL) UniformMatrix4fv(location int32, value [16]float32) {
	ogl.UniformMatrix4fv(location, 1, false, &value[0])
}
