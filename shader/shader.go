// Package shader provides the WGSL program that draws outline meshes.
//
// The vertex input matches uifx.VertexLayout; bind group 0 holds a uniform
// buffer with the viewport size and the UI origin, both in pixels.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed outline.wgsl
var outlineWGSL string

// UniformSize is the size in bytes of the Uniforms block
// (viewport vec2<f32> + origin vec2<f32>).
const UniformSize = 16

// Entry points of the outline program.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Source returns the WGSL source of the outline program.
func Source() string {
	return outlineWGSL
}

// Compile translates the outline program to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(outlineWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: compile outline: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: compile outline: SPIR-V size %d is not word aligned", len(spirvBytes))
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
