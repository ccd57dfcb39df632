// Package uifx provides mesh effects for UI graphics.
//
// # Overview
//
// uifx operates on triangulated UI vertex streams, the same shape of data a
// UI toolkit hands to its renderer when it rebuilds a graphic's geometry.
// Effects append or rewrite vertices; they never own the mesh they modify.
//
// The main effect is the gradient outline: four offset copies of a graphic,
// each recolored by a directional gradient lookup, produce a four-way
// drop-shadow/outline behind the original geometry.
//
// # Quick Start
//
//	import "github.com/gogpu/uifx"
//
//	params := uifx.OutlineParams{
//	    Gradient:  uifx.NewGradient(
//	        uifx.ColorStop{Offset: 0, Color: uifx.RGB(0, 0, 0)},
//	        uifx.ColorStop{Offset: 1, Color: uifx.RGB(0.2, 0.2, 0.6)},
//	    ),
//	    Distance:  f32.Vec2{4, -4},
//	    Direction: uifx.TopToBottom,
//	}
//
//	out := uifx.Generate(quad, params) // 5 * len(quad) vertices
//
// For repeated rebuilds, keep an [Outline] around: it owns a scratch buffer,
// clamps configuration at write time and tracks when geometry is dirty.
//
// # Coordinate System
//
// UI coordinates are y-up, matching the usual canvas-space convention of
// retained-mode UI toolkits:
//   - X increases right
//   - Y increases up
//   - Z is carried through untouched
//
// # Sub-packages
//
//   - shader: WGSL program for drawing encoded outline vertices
//   - preview: software rasterizer for inspecting generated meshes
//   - config: TOML/YAML effect configuration with hot reload
//   - animwait: waiting for animation playback state to complete
//   - remap: bulk material remap tables over host-supplied importers
package uifx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
