// Package gl describes the subset of OpenGL used for glyph atlas textures
// and text quad rendering.
//
// The API interface decouples the library from a live GL context: the
// production implementation (see opengl.go) forwards to go-gl bindings,
// while tests substitute a recording fake. All methods operate on the GL
// context that is current on the calling thread.
package gl

// Enum is a GL enumerant (GLenum).
type Enum uint32

const (
	// ArrayBuffer is the buffer target for vertex attributes.
	ArrayBuffer Enum = 0x8892
	// ArrayBufferBinding queries the buffer currently bound to ArrayBuffer.
	ArrayBufferBinding Enum = 0x8894
	// VertexArrayBinding queries the currently bound vertex array object.
	VertexArrayBinding Enum = 0x85B5

	// StaticDraw hints that buffer contents are set once and drawn many times.
	StaticDraw Enum = 0x88E4
	// DynamicDraw hints that buffer contents are respecified repeatedly.
	DynamicDraw Enum = 0x88E8

	// Float is the data type of 32-bit float vertex attributes.
	Float Enum = 0x1406
	// Triangles is the primitive mode for independent triangles.
	Triangles Enum = 0x0004

	// Texture2D is the target for two-dimensional textures.
	Texture2D Enum = 0x0DE1
	// TextureBinding2D queries the texture bound to Texture2D on the
	// active texture unit.
	TextureBinding2D Enum = 0x8069
	// Texture0 is the first texture unit; unit n is Texture0 + n.
	Texture0 Enum = 0x84C0
	// ActiveTextureUnit queries the currently selected texture unit.
	ActiveTextureUnit Enum = 0x84E0
	// MaxTextureImageUnits queries the number of fragment texture units.
	MaxTextureImageUnits Enum = 0x8872

	// TextureMagFilter selects the magnification filter.
	TextureMagFilter Enum = 0x2800
	// TextureMinFilter selects the minification filter.
	TextureMinFilter Enum = 0x2801
	// TextureWrapS selects the wrap mode for texture coordinate S.
	TextureWrapS Enum = 0x2802
	// TextureWrapT selects the wrap mode for texture coordinate T.
	TextureWrapT Enum = 0x2803
	// Linear selects linear filtering.
	Linear Enum = 0x2601
	// LinearMipmapLinear selects trilinear filtering.
	LinearMipmapLinear Enum = 0x2703
	// ClampToEdge clamps texture coordinates to the edge.
	ClampToEdge Enum = 0x812F

	// Red is the single-channel pixel format used for glyph coverage.
	Red Enum = 0x1903
	// UnsignedByte is the 8-bit unsigned pixel data type.
	UnsignedByte Enum = 0x1401
	// UnpackAlignment controls row alignment of client pixel data.
	UnpackAlignment Enum = 0x0CF5

	// Blend enables framebuffer blending.
	Blend Enum = 0x0BE2
	// DepthTest enables depth testing.
	DepthTest Enum = 0x0B71
	// SrcAlpha is the source-alpha blend factor.
	SrcAlpha Enum = 0x0302
	// OneMinusSrcAlpha is the inverse source-alpha blend factor.
	OneMinusSrcAlpha Enum = 0x0303
	// BlendDstRGB queries the destination RGB blend factor.
	BlendDstRGB Enum = 0x80C8
	// BlendSrcRGB queries the source RGB blend factor.
	BlendSrcRGB Enum = 0x80C9
	// BlendDstAlpha queries the destination alpha blend factor.
	BlendDstAlpha Enum = 0x80CA
	// BlendSrcAlpha queries the source alpha blend factor.
	BlendSrcAlpha Enum = 0x80CB

	// VertexShader is the shader stage for vertex processing.
	VertexShader Enum = 0x8B31
	// FragmentShader is the shader stage for fragment processing.
	FragmentShader Enum = 0x8B30
	// CompileStatus queries whether a shader compiled successfully.
	CompileStatus Enum = 0x8B81
	// LinkStatus queries whether a program linked successfully.
	LinkStatus Enum = 0x8B82
	// CurrentProgram queries the program in use.
	CurrentProgram Enum = 0x8B8D
)

// API is the OpenGL surface required by the text renderer.
//
// Object names (buffers, vertex arrays, textures, shaders, programs) are
// plain uint32 handles as in OpenGL itself. A zero handle always means
// "no object".
type API interface {
	// GetInteger returns the value of an integer state variable.
	GetInteger(pname Enum) int32

	// Enable turns on a capability such as Blend or DepthTest.
	Enable(cap Enum)

	// Disable turns off a capability.
	Disable(cap Enum)

	// IsEnabled reports whether a capability is on.
	IsEnabled(cap Enum) bool

	// BlendFunc sets the blend factors for all channels.
	BlendFunc(src, dst Enum)

	// BlendFuncSeparate sets RGB and alpha blend factors independently.
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)

	// DrawArrays renders primitives from bound vertex arrays.
	DrawArrays(mode Enum, first, count int32)

	// CreateBuffer generates one buffer object name.
	CreateBuffer() uint32

	// DeleteBuffer deletes a buffer object.
	DeleteBuffer(buf uint32)

	// BindBuffer binds a buffer to a target.
	BindBuffer(target Enum, buf uint32)

	// BufferData allocates size bytes of storage for the bound buffer and,
	// if data is non-nil, initializes it. A nil data orphans the storage,
	// which is the fast path before BufferSubData on dynamic buffers.
	BufferData(target Enum, size int, data []byte, usage Enum)

	// BufferSubData overwrites a range of the bound buffer's storage.
	BufferSubData(target Enum, offset int, data []byte)

	// CreateVertexArray generates one vertex array object name.
	CreateVertexArray() uint32

	// DeleteVertexArray deletes a vertex array object.
	DeleteVertexArray(arr uint32)

	// BindVertexArray binds a vertex array object.
	BindVertexArray(arr uint32)

	// EnableVertexAttribArray enables a generic vertex attribute.
	EnableVertexAttribArray(index uint32)

	// VertexAttribPointer defines the layout of a vertex attribute within
	// the buffer currently bound to ArrayBuffer.
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride, offset int32)

	// CreateTexture generates one texture object name.
	CreateTexture() uint32

	// DeleteTexture deletes a texture object.
	DeleteTexture(tex uint32)

	// BindTexture binds a texture to a target on the active unit.
	BindTexture(target Enum, tex uint32)

	// ActiveTexture selects the active texture unit (Texture0 + n).
	ActiveTexture(unit Enum)

	// TexImage2D uploads a two-dimensional texture image.
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, xtype Enum, data []byte)

	// TexParameteri sets an integer texture parameter.
	TexParameteri(target, pname Enum, param int32)

	// GenerateMipmap builds the mipmap chain for the bound texture.
	GenerateMipmap(target Enum)

	// PixelStorei sets a pixel storage mode such as UnpackAlignment.
	PixelStorei(pname Enum, param int32)

	// CreateShader creates a shader object of the given stage.
	CreateShader(xtype Enum) uint32

	// DeleteShader deletes a shader object.
	DeleteShader(shader uint32)

	// ShaderSource replaces the source code of a shader.
	ShaderSource(shader uint32, source string)

	// CompileShader compiles a shader.
	CompileShader(shader uint32)

	// GetShaderi returns a shader parameter such as CompileStatus.
	GetShaderi(shader uint32, pname Enum) int32

	// GetShaderInfoLog returns the shader's information log.
	GetShaderInfoLog(shader uint32) string

	// CreateProgram creates an empty program object.
	CreateProgram() uint32

	// DeleteProgram deletes a program object.
	DeleteProgram(program uint32)

	// AttachShader attaches a shader to a program.
	AttachShader(program, shader uint32)

	// DetachShader detaches a shader from a program.
	DetachShader(program, shader uint32)

	// BindAttribLocation associates an attribute index with a variable name
	// prior to linking.
	BindAttribLocation(program, index uint32, name string)

	// LinkProgram links a program.
	LinkProgram(program uint32)

	// GetProgrami returns a program parameter such as LinkStatus.
	GetProgrami(program uint32, pname Enum) int32

	// GetProgramInfoLog returns the program's information log.
	GetProgramInfoLog(program uint32) string

	// UseProgram installs a program as part of the rendering state.
	UseProgram(program uint32)

	// GetUniformLocation returns the location of a uniform variable,
	// or -1 if the name does not correspond to an active uniform.
	GetUniformLocation(program uint32, name string) int32

	// Uniform1i sets an int uniform (also used for sampler bindings).
	Uniform1i(location, v int32)

	// Uniform4f sets a vec4 uniform.
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	// UniformMatrix4fv sets a mat4 uniform from a column-major array.
	UniformMatrix4fv(location int32, value [16]float32)
}
