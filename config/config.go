// Package config loads gradient outline settings from TOML or YAML files.
//
// A config file describes one outline effect:
//
//	enabled = true
//	direction = "top-to-bottom"
//	use_graphic_alpha = true
//	layout = "chained"
//	distance = [4.0, -4.0]
//
//	[gradient]
//	mode = "blend"
//
//	[[gradient.stops]]
//	offset = 0.0
//	color = "#000000ff"
//
//	[[gradient.stops]]
//	offset = 1.0
//	color = "#3050c0ff"
//
// The YAML form uses the same keys.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/uifx"
)

var (
	// ErrUnknownFormat is returned for file extensions other than .toml,
	// .yaml and .yml.
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrInvalid wraps every validation failure reported by Params.
	ErrInvalid = errors.New("config: invalid")
)

// Format is a config file encoding.
type Format int

const (
	// FormatTOML is TOML, decoded with go-toml.
	FormatTOML Format = iota
	// FormatYAML is YAML, decoded with yaml.v3.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Stop is one gradient stop; Color is a hex string accepted by
// uifx.ParseHex.
type Stop struct {
	Offset float32 `toml:"offset" yaml:"offset"`
	Color  string  `toml:"color" yaml:"color"`
}

// Gradient is the gradient section of a config file.
type Gradient struct {
	Mode  string `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Stops []Stop `toml:"stops" yaml:"stops"`
}

// Config is the decoded form of an outline config file. Fields hold the
// raw values; Params validates and converts them.
type Config struct {
	Enabled         bool      `toml:"enabled" yaml:"enabled"`
	Direction       string    `toml:"direction" yaml:"direction"`
	UseGraphicAlpha bool      `toml:"use_graphic_alpha" yaml:"use_graphic_alpha"`
	Layout          string    `toml:"layout,omitempty" yaml:"layout,omitempty"`
	Distance        []float32 `toml:"distance" yaml:"distance,flow"`
	Gradient        Gradient  `toml:"gradient" yaml:"gradient"`
}

// Default returns the configuration used for keys a file leaves out:
// enabled, top-to-bottom, a one unit drop to the lower right and a
// black-to-transparent gradient.
func Default() Config {
	return Config{
		Enabled:   true,
		Direction: uifx.TopToBottom.String(),
		Layout:    uifx.LayoutChained.String(),
		Distance:  []float32{1, -1},
		Gradient:  Gradient{Mode: uifx.GradientBlend.String(), Stops: defaultStops()},
	}
}

func defaultStops() []Stop {
	return []Stop{
		{Offset: 0, Color: "#000000ff"},
		{Offset: 1, Color: "#00000000"},
	}
}

// Decode parses data in the given format on top of Default.
func Decode(data []byte, format Format) (Config, error) {
	cfg := Default()
	cfg.Gradient.Stops = nil
	cfg.Distance = nil

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", format, err)
	}

	if cfg.Gradient.Stops == nil {
		cfg.Gradient.Stops = defaultStops()
	}
	if cfg.Distance == nil {
		cfg.Distance = Default().Distance
	}
	return cfg, nil
}

// Encode serializes cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}

// Load reads and decodes the config file at path.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// Save encodes cfg in the format implied by path and writes it.
func Save(path string, cfg Config) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(cfg, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config files are not secret
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// Params validates cfg and converts it to outline parameters. Validation
// errors wrap ErrInvalid.
func (c Config) Params() (uifx.OutlineParams, error) {
	var p uifx.OutlineParams

	dir, err := uifx.ParseDirection(c.Direction)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	layout, err := uifx.ParseLayout(c.Layout)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	mode, err := uifx.ParseGradientMode(c.Gradient.Mode)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var dist f32.Vec2
	switch len(c.Distance) {
	case 0:
	case 2:
		dist = f32.Vec2{c.Distance[0], c.Distance[1]}
	default:
		return p, fmt.Errorf("%w: distance needs 2 components, got %d", ErrInvalid, len(c.Distance))
	}

	stops := make([]uifx.ColorStop, 0, len(c.Gradient.Stops))
	for i, s := range c.Gradient.Stops {
		if !(s.Offset >= 0 && s.Offset <= 1) {
			return p, fmt.Errorf("%w: gradient stop %d offset %v outside [0, 1]", ErrInvalid, i, s.Offset)
		}
		col, err := uifx.ParseHex(s.Color)
		if err != nil {
			return p, fmt.Errorf("%w: gradient stop %d: %w", ErrInvalid, i, err)
		}
		stops = append(stops, uifx.ColorStop{Offset: s.Offset, Color: col.Float()})
	}

	g := uifx.NewGradient(stops...)
	g.Mode = mode

	p = uifx.OutlineParams{
		Gradient:        g,
		Distance:        uifx.ClampDistance(dist),
		Direction:       dir,
		UseGraphicAlpha: c.UseGraphicAlpha,
		Layout:          layout,
	}
	return p, nil
}

// Apply validates cfg and pushes it into o through its setters, so o is
// marked dirty. o is left unchanged when validation fails.
func (c Config) Apply(o *uifx.Outline) error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	o.SetGradient(p.Gradient)
	o.SetDistance(p.Distance)
	o.SetDirection(p.Direction)
	o.SetUseGraphicAlpha(p.UseGraphicAlpha)
	o.SetLayout(p.Layout)
	o.SetEnabled(c.Enabled)
	return nil
}
