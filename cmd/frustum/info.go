package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/frustum/pkg/models"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.glb|model.gltf|model.obj>",
		Short: "Display model information",
		Long:  "Display information about a model usable with split --model: format, polygon count, vertex count, bounding box and materials.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func writeInfo(w io.Writer, modelPath string) error {
	info, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	mesh, err := models.Load(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	size := mesh.Size()
	center := mesh.Center()
	ext := filepath.Ext(modelPath)

	fmt.Fprintf(w, "File:       %s\n", filepath.Base(modelPath))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", mesh.BoundsMin.X, mesh.BoundsMin.Y, mesh.BoundsMin.Z)
	fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", mesh.BoundsMax.X, mesh.BoundsMax.Y, mesh.BoundsMax.Z)
	fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)

	if len(mesh.Materials) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Materials:  %d\n", len(mesh.Materials))
		for _, m := range mesh.Materials {
			tex := "none"
			if m.BaseMap != nil {
				b := m.BaseMap.Bounds()
				tex = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
			}
			fmt.Fprintf(w, "  %-12s color (%.2f, %.2f, %.2f)  texture %s\n",
				m.Name, m.BaseColor[0], m.BaseColor[1], m.BaseColor[2], tex)
		}
	}
	return nil
}
