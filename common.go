package gltext

import (
	"github.com/gogpu/gltext/internal/gl"
)

const vertexShaderSrc = `#version 330 core

in vec2 vert_pos;
in vec2 vert_tex_coords;

uniform mat4 model_view_projection;

out vec2 tex_coords;

void main()
{
    tex_coords = vert_tex_coords;
    gl_Position = model_view_projection * vec4(vert_pos, 0.0, 1.0);
}
`

const fragmentShaderSrc = `#version 330 core

in vec2 tex_coords;

uniform sampler2D font_page;
uniform vec4 color;

out vec4 frag_color;

void main()
{
    frag_color = vec4(color.rgb, color.a * texture(font_page, tex_coords).r);
}
`

// common is the GL state shared by every Font in the process: the
// backend, the text shader program, its uniform locations, and the
// texture unit reserved for atlas pages. It exists while at least one
// Font is open and is torn down when the last one closes.
//
// Like everything touching GL, acquire and release must run on the
// thread that owns the context.
type common struct {
	api     gl.API
	program uint32
	uMVP    int32
	uColor  int32
	texUnit int32
}

var (
	shared     *common
	sharedRefs int

	// newBackend is replaced in tests with a fake GL recorder.
	newBackend = gl.New
)

// acquireCommon returns the shared bundle, building it on first use.
// A construction failure releases everything it created.
func acquireCommon() (*common, error) {
	if shared != nil {
		sharedRefs++
		return shared, nil
	}

	api := newBackend()

	vs, err := compileShader(api, gl.VertexShader, vertexShaderSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(api, gl.FragmentShader, fragmentShaderSrc)
	if err != nil {
		api.DeleteShader(vs)
		return nil, err
	}

	program := api.CreateProgram()
	api.AttachShader(program, vs)
	api.AttachShader(program, fs)
	api.BindAttribLocation(program, 0, "vert_pos")
	api.BindAttribLocation(program, 1, "vert_tex_coords")
	api.LinkProgram(program)

	api.DetachShader(program, vs)
	api.DetachShader(program, fs)
	api.DeleteShader(vs)
	api.DeleteShader(fs)

	if api.GetProgrami(program, gl.LinkStatus) == 0 {
		log := api.GetProgramInfoLog(program)
		api.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	c := &common{
		api:     api,
		program: program,
		uMVP:    api.GetUniformLocation(program, "model_view_projection"),
		uColor:  api.GetUniformLocation(program, "color"),
		texUnit: api.GetInteger(gl.MaxTextureImageUnits) - 1,
	}

	// Point the sampler at the reserved unit once. Every later draw
	// binds page textures there and leaves the other units alone.
	prevProgram := uint32(api.GetInteger(gl.CurrentProgram))
	api.UseProgram(program)
	api.Uniform1i(api.GetUniformLocation(program, "font_page"), c.texUnit)
	api.UseProgram(prevProgram)

	Logger().Debug("shared text renderer built",
		"program", program, "texture_unit", c.texUnit)

	shared = c
	sharedRefs = 1
	return c, nil
}

// releaseCommon drops one reference and destroys the bundle when the
// count reaches zero.
func releaseCommon() {
	if shared == nil {
		return
	}
	sharedRefs--
	if sharedRefs > 0 {
		return
	}
	shared.api.DeleteProgram(shared.program)
	shared = nil
	Logger().Debug("shared text renderer destroyed")
}

func compileShader(api gl.API, stage gl.Enum, src string) (uint32, error) {
	shader := api.CreateShader(stage)
	api.ShaderSource(shader, src)
	api.CompileShader(shader)
	if api.GetShaderi(shader, gl.CompileStatus) == 0 {
		log := api.GetShaderInfoLog(shader)
		api.DeleteShader(shader)
		name := "vertex"
		if stage == gl.FragmentShader {
			name = "fragment"
		}
		return 0, &CompileError{Stage: name, Log: log}
	}
	return shader, nil
}
