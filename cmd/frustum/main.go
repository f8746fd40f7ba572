// frustum - camera configuration demos for the terminal
//
// Three scenes show what the camera parameters do:
//
//	ortho  - pixel-space orthographic camera, six textured planes bouncing
//	split  - two perspective cameras side by side, the left one's frustum
//	         drawn in the right view
//	depth  - a row of spheres and a tiny near plane that runs the depth
//	         buffer out of precision; l toggles logarithmic depth
//
// Controls (all scenes):
//
//	Tab / [ ]  - Select a control
//	+ / -      - Adjust it one step ({ } for ten)
//	Mouse drag - Orbit (split, depth)
//	Scroll     - Dolly in/out (split, depth)
//	?          - Toggle HUD
//	Esc        - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/host"
	"github.com/taigrr/frustum/pkg/host/window"
	"github.com/taigrr/frustum/pkg/models"
	"github.com/taigrr/frustum/pkg/scene"
)

var version = "dev"

var sceneHelp = map[string]string{
	"ortho": "Orthographic camera in pixel space with bouncing planes",
	"split": "Two perspective cameras in split viewports",
	"depth": "Near/far precision with optional logarithmic depth",
}

func main() {
	log.SetDefaultsForClientTools()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var logLevel string

	root := &cobra.Command{
		Use:          "frustum",
		Short:        "Camera configuration demos for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			if err := log.SetLogLevelStr(logLevel); err != nil {
				return fmt.Errorf("%w: log level %q", config.ErrInvalid, logLevel)
			}
			return nil
		},
	}

	f := root.PersistentFlags()
	f.Float64Var(&cfg.FPS, "fps", cfg.FPS, "Target FPS")
	f.BoolVar(&cfg.Headless, "headless", false, "Render off screen and save the last frame as PNG")
	f.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to render in headless mode")
	f.StringVar(&cfg.Out, "out", cfg.Out, "PNG output path in headless mode")
	f.BoolVar(&cfg.Window, "window", false, "Open a desktop window instead of using the terminal")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Render width in headless mode, initial window width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Render height in headless mode, initial window height")
	f.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window pixels per render pixel")
	f.IntVar(&cfg.DepthBits, "depth-bits", cfg.DepthBits, "Depth buffer precision in bits (8-32)")
	f.StringVar(&cfg.Background, "bg", "", "Background color (R,G,B or #rrggbb)")
	f.StringVar(&logLevel, "loglevel", "", "Log level (debug, verbose, info, warning, error)")

	for _, name := range scene.Names {
		root.AddCommand(newSceneCmd(name, &cfg))
	}
	root.AddCommand(newInfoCmd())
	return root
}

func newSceneCmd(name string, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: sceneHelp[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.Context(), name, *cfg)
		},
	}
	f := cmd.Flags()
	switch name {
	case "ortho":
		f.StringSliceVar(&cfg.Textures, "texture", nil, "Plane texture images (PNG/JPG), cycled over the planes")
		f.BoolVar(&cfg.PickTexture, "pick-texture", false, "Choose a plane texture with a file dialog")
		f.Float64Var(&cfg.PlaneSize, "plane-size", cfg.PlaneSize, "Plane edge length in pixels")
	case "split":
		f.StringVar(&cfg.Model, "model", "", "Extra model (GLB/glTF/OBJ) placed behind the cube and sphere")
	case "depth":
		f.BoolVar(&cfg.LogDepth, "log-depth", false, "Start with logarithmic depth on")
	}
	return cmd
}

func runScene(ctx context.Context, name string, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	textures, err := loadTextures(cfg)
	if err != nil {
		return err
	}
	opts := scene.Options{
		FPS:       cfg.FPSInt(),
		Textures:  textures,
		PlaneSize: cfg.PlaneSize,
		LogDepth:  cfg.LogDepth,
	}
	if cfg.Model != "" {
		m, err := models.Load(cfg.Model)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}
		log.Infof("Loaded %s (%d vertices, %d triangles)", cfg.Model, m.VertexCount(), m.TriangleCount())
		opts.Prop = m
	}
	s, err := scene.New(name, opts)
	if err != nil {
		return err
	}
	if cfg.Window {
		return window.Run(ctx, s, cfg)
	}
	return host.Run(ctx, s, cfg)
}
