package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/uifx"
)

const sampleTOML = `
enabled = true
direction = "bottom-to-top"
use_graphic_alpha = true
layout = "underlay"
distance = [4.0, -700.0]

[gradient]
mode = "fixed"

[[gradient.stops]]
offset = 1.0
color = "#ffffff"

[[gradient.stops]]
offset = 0.0
color = "#00000080"
`

const sampleYAML = `
enabled: false
direction: right-to-left
distance: [2.5, 3]
gradient:
  stops:
    - offset: 0.5
      color: "#ff0000"
`

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"outline.toml", FormatTOML},
		{"dir/Outline.TOML", FormatTOML},
		{"outline.yaml", FormatYAML},
		{"outline.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatOf("outline.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatOf(json) error = %v, want ErrUnknownFormat", err)
	}
}

func TestDecodeTOML(t *testing.T) {
	cfg, err := Decode([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params error: %v", err)
	}

	if p.Direction != uifx.BottomToTop || p.Layout != uifx.LayoutUnderlay || !p.UseGraphicAlpha {
		t.Errorf("params = %+v", p)
	}
	if p.Distance != (f32.Vec2{4, -600}) {
		t.Errorf("distance = %v, want clamped (4, -600)", p.Distance)
	}
	if p.Gradient.Mode != uifx.GradientFixed {
		t.Errorf("gradient mode = %v, want fixed", p.Gradient.Mode)
	}
	if len(p.Gradient.Stops) != 2 || p.Gradient.Stops[0].Offset != 0 {
		t.Fatalf("stops = %+v, want two sorted stops", p.Gradient.Stops)
	}
	if got := p.Gradient.Stops[0].Color.Color32(); got != (uifx.Color32{A: 0x80}) {
		t.Errorf("first stop = %+v", got)
	}
}

func TestDecodeYAMLUsesDefaults(t *testing.T) {
	cfg, err := Decode([]byte(sampleYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if cfg.Enabled {
		t.Error("enabled should be false")
	}
	if cfg.Layout != "chained" {
		t.Errorf("layout = %q, want default chained", cfg.Layout)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params error: %v", err)
	}
	if p.Direction != uifx.RightToLeft || p.Distance != (f32.Vec2{2.5, 3}) {
		t.Errorf("params = %+v", p)
	}
	if got := p.Gradient.Evaluate(0).Color32(); got != (uifx.Color32{R: 255, A: 255}) {
		t.Errorf("gradient(0) = %+v, want red", got)
	}
}

func TestDecodeEmptyIsDefault(t *testing.T) {
	cfg, err := Decode(nil, FormatTOML)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	def := Default()
	if cfg.Enabled != def.Enabled || cfg.Direction != def.Direction ||
		len(cfg.Gradient.Stops) != len(def.Gradient.Stops) || len(cfg.Distance) != 2 {
		t.Errorf("Decode(empty) = %+v, want defaults %+v", cfg, def)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode([]byte("direction = "), FormatTOML); err == nil {
		t.Error("expected TOML syntax error")
	}
	if _, err := Decode([]byte("gradient: [unclosed"), FormatYAML); err == nil {
		t.Error("expected YAML syntax error")
	}
	if _, err := Decode(nil, Format(7)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format error = %v", err)
	}
}

func TestParamsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"direction", func(c *Config) { c.Direction = "sideways" }},
		{"layout", func(c *Config) { c.Layout = "tiled" }},
		{"mode", func(c *Config) { c.Gradient.Mode = "smooth" }},
		{"distance arity", func(c *Config) { c.Distance = []float32{1, 2, 3} }},
		{"stop offset", func(c *Config) { c.Gradient.Stops[0].Offset = 1.5 }},
		{"stop offset nan", func(c *Config) { c.Gradient.Stops[0].Offset = float32(math.NaN()) }},
		{"stop color", func(c *Config) { c.Gradient.Stops[1].Color = "#zz" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if _, err := c.Params(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Params error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	o := uifx.NewOutline(uifx.OutlineParams{})
	o.ClearDirty()

	cfg, err := Decode([]byte(sampleTOML), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Apply(o); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if !o.Dirty() {
		t.Error("Apply did not mark the outline dirty")
	}
	if o.Direction() != uifx.BottomToTop || o.Distance() != (f32.Vec2{4, -600}) || !o.Enabled() {
		t.Errorf("outline params = %+v", o.Params())
	}

	bad := cfg
	bad.Direction = "nowhere"
	o.ClearDirty()
	if err := bad.Apply(o); !errors.Is(err, ErrInvalid) {
		t.Errorf("Apply(bad) error = %v", err)
	}
	if o.Dirty() {
		t.Error("failed Apply touched the outline")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"outline.toml", "outline.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			want := Default()
			want.Direction = uifx.LeftToRight.String()
			want.Distance = []float32{3, 4}

			if err := Save(path, want); err != nil {
				t.Fatalf("Save error: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if got.Direction != want.Direction || got.Distance[0] != 3 || got.Distance[1] != 4 ||
				len(got.Gradient.Stops) != 2 || got.Gradient.Stops[1].Color != "#00000000" {
				t.Errorf("Load = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
	if _, err := Load(filepath.Join(dir, "x.ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ini error = %v, want ErrUnknownFormat", err)
	}
}
