package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/frustum/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file. Missing normals are computed with
// smooth shading.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ parses OBJ geometry (v, vt, vn, f) from r. Polygons are fan
// triangulated and keep the file's counter-clockwise winding.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	var positions, normals []math3d.Vec3
	var uvs []math3d.Vec2

	// OBJ indexes position/uv/normal separately
	type vertexKey struct {
		pos, uv, normal int
	}
	vertexMap := make(map[vertexKey]int)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			xyz, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", lineNum, fields[0], err)
			}
			p := math3d.V3(xyz[0], xyz[1], xyz[2])
			if fields[0] == "v" {
				positions = append(positions, p)
			} else {
				normals = append(normals, p.Normalize())
			}

		case "vt":
			uv, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: vt: %w", lineNum, err)
			}
			uvs = append(uvs, math3d.V2(uv[0], uv[1]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			faceVerts := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				p, t, n, err := parseFaceVertex(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				key := vertexKey{
					resolveIndex(p, len(positions)),
					resolveIndex(t, len(uvs)),
					resolveIndex(n, len(normals)),
				}
				if key.pos < 0 || key.pos >= len(positions) {
					return nil, fmt.Errorf("line %d: position index %d out of range", lineNum, p)
				}
				idx, ok := vertexMap[key]
				if !ok {
					v := MeshVertex{Position: positions[key.pos]}
					if key.uv >= 0 && key.uv < len(uvs) {
						v.UV = uvs[key.uv]
					}
					if key.normal >= 0 && key.normal < len(normals) {
						v.Normal = normals[key.normal]
					}
					idx = len(mesh.Vertices)
					mesh.Vertices = append(mesh.Vertices, v)
					vertexMap[key] = idx
				}
				faceVerts = append(faceVerts, idx)
			}
			for i := 1; i+1 < len(faceVerts); i++ {
				mesh.Faces = append(mesh.Faces, Face{
					V:        [3]int{faceVerts[0], faceVerts[i], faceVerts[i+1]},
					Material: -1,
				})
			}

		case "o", "g":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	if len(normals) == 0 {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("need %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := range n {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFaceVertex parses v, v/vt, v/vt/vn or v//vn. Unspecified indices
// are 0.
func parseFaceVertex(s string) (pos, uv, normal int, err error) {
	parts := strings.Split(s, "/")
	vals := [3]int{}
	for i := range min(3, len(parts)) {
		if parts[i] == "" && i > 0 {
			continue
		}
		if vals[i], err = strconv.Atoi(parts[i]); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid face index %q", s)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

// resolveIndex converts a 1-based or negative OBJ index to 0-based. 0
// (unspecified) becomes -1.
func resolveIndex(idx, count int) int {
	switch {
	case idx == 0:
		return -1
	case idx < 0:
		return count + idx
	default:
		return idx - 1
	}
}
