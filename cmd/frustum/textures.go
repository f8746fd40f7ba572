package main

import (
	"errors"
	"fmt"
	"slices"

	"fortio.org/log"
	"github.com/ncruces/zenity"
	"github.com/taigrr/frustum/internal/config"
	"github.com/taigrr/frustum/pkg/render"
)

// pickFile is swapped out by tests.
var pickFile = func() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Choose a plane texture"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
}

// loadTextures decodes the --texture images plus the one picked in the
// file dialog, if asked for. A canceled dialog is not an error.
func loadTextures(cfg config.Config) ([]*render.Texture, error) {
	paths := slices.Clone(cfg.Textures)
	if cfg.PickTexture {
		p, err := pickFile()
		switch {
		case errors.Is(err, zenity.ErrCanceled):
			log.Infof("Texture selection canceled, using the default planes")
		case err != nil:
			return nil, fmt.Errorf("pick texture: %w", err)
		default:
			paths = append(paths, p)
		}
	}
	textures := make([]*render.Texture, 0, len(paths))
	for _, p := range paths {
		t, err := render.LoadTexture(p)
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		log.Infof("Using texture %s: %dx%d", p, t.Width, t.Height)
		textures = append(textures, t)
	}
	return textures, nil
}
