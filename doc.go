// Package gltext renders Unicode text as textured quads with OpenGL.
//
// # Overview
//
// gltext rasterizes glyphs into per-code-page texture atlases, lays out
// UTF-8 strings as triangle pairs with kerning and newline handling, and
// draws them through a shared shader program while leaving the caller's GL
// state exactly as it found it.
//
// # Quick Start
//
//	font, err := gltext.NewFont("DejaVuSans.ttf", 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer font.Close()
//
//	// Inside the render loop, with a current GL context:
//	font.RenderText("Hello, world!", gltext.Color{0, 0, 0, 1},
//	    winSize, pos, gltext.Left|gltext.Top)
//
// Text that rarely changes should use the cached [Text] object instead,
// which lays out and uploads its geometry once:
//
//	label, err := gltext.NewText(font, "Score: 0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer label.Close()
//	label.Render(color, winSize, pos, gltext.Left|gltext.Top)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Font, Text, Align, Color/Vec2/Mat4 (go-gl/mathgl types)
//   - Layout: UTF-8 decoding, pen-advance layout, per-page quad batching
//   - Atlas: lazy per-code-page greyscale textures (16×16 glyph grids)
//   - Internal: gl (minimal OpenGL surface, swappable for tests)
//
// Glyph outlines are rasterized by github.com/golang/freetype; gltext only
// decides what to rasterize, where each glyph lands in texture memory, and
// how quads and bounding boxes are laid out.
//
// # Coordinate System
//
// Screen space has the origin at the top-left with Y increasing downward.
// Layout happens in pixel units relative to the first glyph's baseline
// origin; alignment, rotation and projection are folded into a single
// matrix at draw time.
//
// # Threading
//
// gltext is single-threaded by design: all calls against a Font or Text,
// like all GL calls, must happen on the thread that owns the GL context.
// There is no internal locking.
package gltext
