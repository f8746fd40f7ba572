// Package config holds the command line settings shared by every scene and
// host.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/taigrr/frustum/pkg/render"
)

// ErrInvalid is wrapped by every Validate and ParseColor failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is filled from cobra flags.
type Config struct {
	FPS float64

	// Headless renders Frames frames off screen and writes the last one to
	// Out. Window opens a desktop window instead of using the terminal.
	Headless bool
	Frames   int
	Out      string
	Window   bool

	// Width and Height size the headless buffer; Scale divides the window
	// size into render pixels.
	Width, Height int
	Scale         int

	Textures    []string
	PickTexture bool
	Model       string
	PlaneSize   float64

	DepthBits  int
	LogDepth   bool
	Background string
}

// Default returns the settings used when no flag is given.
func Default() Config {
	return Config{
		FPS:       60,
		Frames:    120,
		Out:       "frustum.png",
		Width:     300,
		Height:    150,
		Scale:     2,
		PlaneSize: 32,
		DepthBits: render.DefaultDepthBits,
	}
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case !(c.FPS > 0) || c.FPS > 1000:
		return fmt.Errorf("%w: fps %v out of range (0, 1000]", ErrInvalid, c.FPS)
	case c.Headless && c.Window:
		return fmt.Errorf("%w: --headless and --window are exclusive", ErrInvalid)
	case c.Headless && c.Frames <= 0:
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalid, c.Frames)
	case c.Headless && c.Out == "":
		return fmt.Errorf("%w: headless mode needs --out", ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale must be at least 1, got %d", ErrInvalid, c.Scale)
	case !(c.PlaneSize > 0):
		return fmt.Errorf("%w: plane size must be positive, got %v", ErrInvalid, c.PlaneSize)
	case c.DepthBits < 8 || c.DepthBits > 32:
		return fmt.Errorf("%w: depth bits %d out of range [8, 32]", ErrInvalid, c.DepthBits)
	}
	if _, _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// FPSInt rounds FPS for the spring animations.
func (c *Config) FPSInt() int {
	return max(1, int(c.FPS+0.5))
}

// ParseColor accepts "R,G,B" or "#rrggbb". An empty string reports ok=false
// so the caller keeps its own default.
func ParseColor(s string) (c color.RGBA, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false, nil
	}
	if hex, found := strings.CutPrefix(s, "#"); found {
		v, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil || len(hex) != 6 {
			return color.RGBA{}, false, fmt.Errorf("%w: color %q", ErrInvalid, s)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, false, fmt.Errorf("%w: color %q (want R,G,B or #rrggbb)", ErrInvalid, s)
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, perr := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if perr != nil {
			return color.RGBA{}, false, fmt.Errorf("%w: color component %q: %w", ErrInvalid, p, perr)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, true, nil
}
