package gltext

import (
	"github.com/gogpu/gltext/internal/gl"
)

// glState is a snapshot of every piece of GL state a draw call
// touches. Rendering wraps itself in a save/restore pair so callers
// find their pipeline exactly as they left it.
type glState struct {
	program       uint32
	arrayBuffer   uint32
	vertexArray   uint32
	blend         bool
	blendSrcRGB   gl.Enum
	blendDstRGB   gl.Enum
	blendSrcAlpha gl.Enum
	blendDstAlpha gl.Enum
	depthTest     bool
	activeTexture gl.Enum
	boundTexture  uint32
}

// saveState records the current pipeline state, including the texture
// bound on the reserved atlas unit. It leaves that unit active.
func saveState(api gl.API, texUnit int32) glState {
	s := glState{
		program:       uint32(api.GetInteger(gl.CurrentProgram)),
		arrayBuffer:   uint32(api.GetInteger(gl.ArrayBufferBinding)),
		vertexArray:   uint32(api.GetInteger(gl.VertexArrayBinding)),
		blend:         api.IsEnabled(gl.Blend),
		blendSrcRGB:   gl.Enum(api.GetInteger(gl.BlendSrcRGB)),
		blendDstRGB:   gl.Enum(api.GetInteger(gl.BlendDstRGB)),
		blendSrcAlpha: gl.Enum(api.GetInteger(gl.BlendSrcAlpha)),
		blendDstAlpha: gl.Enum(api.GetInteger(gl.BlendDstAlpha)),
		depthTest:     api.IsEnabled(gl.DepthTest),
		activeTexture: gl.Enum(api.GetInteger(gl.ActiveTextureUnit)),
	}
	api.ActiveTexture(gl.Texture0 + gl.Enum(texUnit))
	s.boundTexture = uint32(api.GetInteger(gl.TextureBinding2D))
	return s
}

// restore reestablishes the saved state. The reserved unit must still
// be active when it runs.
func (s glState) restore(api gl.API) {
	api.BindTexture(gl.Texture2D, s.boundTexture)
	api.ActiveTexture(s.activeTexture)
	api.BindVertexArray(s.vertexArray)
	api.BindBuffer(gl.ArrayBuffer, s.arrayBuffer)
	api.UseProgram(s.program)
	api.BlendFuncSeparate(s.blendSrcRGB, s.blendDstRGB, s.blendSrcAlpha, s.blendDstAlpha)
	if s.blend {
		api.Enable(gl.Blend)
	} else {
		api.Disable(gl.Blend)
	}
	if s.depthTest {
		api.Enable(gl.DepthTest)
	} else {
		api.Disable(gl.DepthTest)
	}
}

// drawRanges issues one draw call per atlas page referenced by the
// layout. The caller has already saved the pipeline state and bound
// the reserved texture unit; vertex data is in the given vertex array.
func (f *Font) drawRanges(vao uint32, ranges []pageRange, color Color, mvp Mat4) {
	api := f.c.api

	api.Enable(gl.Blend)
	api.BlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
	api.Disable(gl.DepthTest)

	api.UseProgram(f.c.program)
	api.UniformMatrix4fv(f.c.uMVP, mvp)
	api.Uniform4f(f.c.uColor, color[0], color[1], color[2], color[3])

	api.BindVertexArray(vao)
	for _, rg := range ranges {
		api.BindTexture(gl.Texture2D, f.getPage(rg.page).texture)
		api.DrawArrays(gl.Triangles, rg.start, rg.count)
	}
}
