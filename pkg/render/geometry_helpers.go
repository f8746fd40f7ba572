package render

import "github.com/taigrr/frustum/pkg/math3d"

// ndcCube returns the corners of the normalized device cube, near face
// (z = -1) first, each face wound counter-clockwise from bottom-left.
func ndcCube() [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
	}
}

// cubeEdges indexes the 12 edges of a box laid out like ndcCube.
var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
