package models

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // glTF base color textures
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/frustum/pkg/math3d"
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// LoadGLB loads a glTF or binary glTF file, flattening the default scene's
// node hierarchy into one mesh in world space.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	mesh.Materials = extractMaterials(doc, path)

	for _, root := range rootNodes(doc) {
		if err := processNode(doc, root, math3d.Identity(), mesh); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if v.Normal.Len() > 0.001 {
			hasNormals = true
			break
		}
	}
	mesh.RemoveDegenerateFaces()
	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// rootNodes returns the default scene's roots, or every parentless node when
// the document has no scenes.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil {
			idx = int(*doc.Scene)
		}
		roots := make([]int, 0, len(doc.Scenes[idx].Nodes))
		for _, n := range doc.Scenes[idx].Nodes {
			roots = append(roots, int(n))
		}
		return roots
	}
	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[int(c)] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func nodeTransform(node *gltf.Node) math3d.Mat4 {
	if node.Matrix != identityMatrix && node.Matrix != [16]float64{} {
		return math3d.Mat4FromSlice(node.Matrix[:])
	}
	local := math3d.Translate(math3d.V3(node.Translation[0], node.Translation[1], node.Translation[2]))
	if node.Rotation != [4]float64{} {
		local = local.Mul(math3d.QuatToMat4(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3]))
	}
	if node.Scale != [3]float64{} {
		local = local.Mul(math3d.Scale(math3d.V3(node.Scale[0], node.Scale[1], node.Scale[2])))
	}
	return local
}

func processNode(doc *gltf.Document, idx int, parent math3d.Mat4, mesh *Mesh) error {
	node := doc.Nodes[idx]
	world := parent.Mul(nodeTransform(node))
	if node.Mesh != nil {
		if err := appendMesh(doc, doc.Meshes[*node.Mesh], world, mesh); err != nil {
			return err
		}
	}
	for _, c := range node.Children {
		if err := processNode(doc, int(c), world, mesh); err != nil {
			return err
		}
	}
	return nil
}

// appendMesh adds the triangle primitives of m, transformed to world space.
// glTF winding is counter-clockwise, which is kept as is.
func appendMesh(doc *gltf.Document, m *gltf.Mesh, world math3d.Mat4, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}
		var normals [][3]float32
		if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
			if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}
		var uvs [][2]float32
		if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}
		material := -1
		if prim.Material != nil {
			material = int(*prim.Material)
		}

		base := len(mesh.Vertices)
		for i, p := range positions {
			v := MeshVertex{Position: world.MulVec3(math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))}
			if i < len(normals) {
				n := normals[i]
				v.Normal = world.MulVec3Dir(math3d.V3(float64(n[0]), float64(n[1]), float64(n[2]))).Normalize()
			}
			if i < len(uvs) {
				// glTF V runs top to bottom
				v.UV = math3d.V2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []uint32
		if prim.Indices != nil {
			if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		for i := 0; i+2 < len(indices); i += 3 {
			f := Face{Material: material}
			for k := range 3 {
				idx := int(indices[i+k])
				if idx >= len(positions) {
					return fmt.Errorf("index %d out of range (%d vertices)", idx, len(positions))
				}
				f.V[k] = base + idx
			}
			mesh.Faces = append(mesh.Faces, f)
		}
	}
	return nil
}

func extractMaterials(doc *gltf.Document, path string) []Material {
	materials := make([]Material, len(doc.Materials))
	for i, mat := range doc.Materials {
		m := Material{Name: mat.Name, BaseColor: [4]float64{1, 1, 1, 1}}
		if pbr := mat.PBRMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor != nil {
				for k := range 4 {
					m.BaseColor[k] = float64(pbr.BaseColorFactor[k])
				}
			}
			if pbr.BaseColorTexture != nil {
				m.BaseMap = textureImage(doc, int(pbr.BaseColorTexture.Index), path)
			}
		}
		materials[i] = m
	}
	return materials
}

// textureImage decodes an embedded or external image, or returns nil.
func textureImage(doc *gltf.Document, texIdx int, path string) image.Image {
	if texIdx >= len(doc.Textures) {
		return nil
	}
	tex := doc.Textures[texIdx]
	if tex.Source == nil || int(*tex.Source) >= len(doc.Images) {
		return nil
	}
	img := doc.Images[*tex.Source]

	var data []byte
	switch {
	case img.BufferView != nil:
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		if end := bv.ByteOffset + bv.ByteLength; end <= len(buf.Data) {
			data = buf.Data[bv.ByteOffset:end]
		}
	case img.IsEmbeddedResource():
		var err error
		if data, err = img.MarshalData(); err != nil {
			return nil
		}
	case img.URI != "":
		var err error
		if data, err = os.ReadFile(filepath.Join(filepath.Dir(path), img.URI)); err != nil {
			return nil
		}
	}
	if data == nil {
		return nil
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return decoded
}
