package gltext

import (
	"errors"
	"fmt"
)

// Sentinel errors for font construction.
var (
	// ErrFontOpen is returned when font data cannot be read or is not a
	// recognized font format.
	ErrFontOpen = errors.New("gltext: cannot open font")

	// ErrNoCharmap is returned when a font carries no usable Unicode
	// character mapping.
	ErrNoCharmap = errors.New("gltext: font has no unicode charmap")

	// ErrClosed is returned when an operation is attempted on a closed Font.
	ErrClosed = errors.New("gltext: font is closed")
)

// SizeError is returned when the rasterizer rejects a requested pixel size.
// A failed Resize leaves the Font's previous size and atlas intact.
type SizeError struct {
	Size uint
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("gltext: cannot set font size %d", e.Size)
}

// CompileError is returned when the shared text shader fails to compile.
// It surfaces as a construction error of the first Font.
type CompileError struct {
	// Stage is the shader stage that failed ("vertex" or "fragment").
	Stage string
	// Log is the GL info log for the failed shader.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gltext: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError is returned when the shared text shader program fails to link.
type LinkError struct {
	// Log is the GL info log for the failed program.
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("gltext: shader program link failed: %s", e.Log)
}
