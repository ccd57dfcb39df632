// Command outlinedemo renders a sample UI panel with a gradient outline to
// a PNG file.
//
// Usage:
//
//	outlinedemo -config outline.toml -output outline.png
//	outlinedemo -config outline.yaml -watch
//
// With -watch the image is re-rendered every time the config file changes,
// until the process is interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/uifx"
	"github.com/gogpu/uifx/config"
	"github.com/gogpu/uifx/preview"
)

func main() {
	var (
		configPath = flag.String("config", "", "outline config file (.toml, .yaml)")
		output     = flag.String("output", "outline.png", "output file")
		width      = flag.Int("width", 480, "image width")
		height     = flag.Int("height", 320, "image height")
		watch      = flag.Bool("watch", false, "re-render when the config file changes")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger := newLogger(*verbose)
	uifx.SetLogger(slog.New(logger))

	if err := run(*configPath, *output, *width, *height, *watch); err != nil {
		logger.Fatal("outlinedemo failed", "error", err)
	}
}

func newLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "outlinedemo",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

func run(configPath, output string, w, h int, watch bool) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid image size %dx%d", w, h)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	d := &demo{output: output, width: w, height: h, outline: uifx.NewOutline(uifx.OutlineParams{})}
	if err := d.render(cfg); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	if configPath == "" {
		return errors.New("-watch requires -config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uifx.Logger().Info("watching for changes", "config", configPath)
	err := config.Watch(ctx, configPath, func(cfg config.Config) {
		if err := d.render(cfg); err != nil {
			uifx.Logger().Error("render failed", "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type demo struct {
	output        string
	width, height int
	outline       *uifx.Outline
	mesh          uifx.Mesh
}

func (d *demo) render(cfg config.Config) error {
	if err := cfg.Apply(d.outline); err != nil {
		return err
	}

	d.mesh.Reset()
	buildPanel(&d.mesh, float32(d.width)*0.3, float32(d.height)*0.3, 12)
	d.outline.ModifyMesh(&d.mesh)

	img := preview.NewCanvas(d.width, d.height, color.NRGBA{0xf4, 0xf1, 0xea, 0xff})
	tris, err := preview.Render(img, &d.mesh, preview.Options{
		Origin: f32.Vec2{float32(d.width) / 2, float32(d.height) / 2},
		Scale:  1,
	})
	if err != nil {
		return err
	}
	if err := preview.SavePNG(d.output, img); err != nil {
		return err
	}
	uifx.Logger().Info("rendered", "output", d.output,
		"vertices", len(d.mesh.Vertices), "triangles", tris)
	return nil
}

// buildPanel adds a panel centered on the origin with half extents hw, hh.
// Corners are cut in r-sized steps so the silhouette reads as rounded.
func buildPanel(m *uifx.Mesh, hw, hh, r float32) {
	body := uifx.Color32{R: 0x3a, G: 0x6e, B: 0xd8, A: 0xff}
	head := uifx.Color32{R: 0x2c, G: 0x55, B: 0xa8, A: 0xff}
	btn := uifx.Color32{R: 0xf6, G: 0xc3, B: 0x45, A: 0xe0}

	m.AddQuad(f32.Vec2{-hw, -hh + r}, f32.Vec2{hw, hh - r}, body)
	m.AddQuad(f32.Vec2{-hw + r, hh - r}, f32.Vec2{hw - r, hh}, head)
	m.AddQuad(f32.Vec2{-hw + r, -hh}, f32.Vec2{hw - r, -hh + r}, body)
	m.AddQuad(f32.Vec2{-hw / 2, -hh / 2}, f32.Vec2{hw / 2, -hh/2 + 3*r}, btn)
}
