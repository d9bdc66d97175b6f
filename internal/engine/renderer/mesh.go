package renderer

import "fmt"

// Mesh is a static triangle set with positions in the first half of the
// vertex buffer and per-vertex colors in the second half. The split layout
// means attribute 1 starts at half the buffer instead of interleaving.
type Mesh struct {
	Name     string
	Vertices []float32
	Count    int32 // vertices to draw
}

// ParseMesh returns the built-in mesh with the given config name.
func ParseMesh(name string) (Mesh, error) {
	switch name {
	case "pyramid", "":
		return pyramidMesh, nil
	case "prism":
		return prismMesh, nil
	default:
		return Mesh{}, fmt.Errorf("unknown mesh %q", name)
	}
}

// Three-sided pyramid, one color per face.
var pyramidMesh = Mesh{
	Name:  "pyramid",
	Count: 9,
	Vertices: []float32{
		// front face
		-0.5, -0.5, -2,
		0, 0.5, -3,
		0.5, -0.5, -2,

		// left face
		-0.5, -0.5, -2,
		0, 0.5, -3,
		0, -0.5, -4,

		// right face
		0.5, -0.5, -2,
		0, 0.5, -3,
		0, -0.5, -4,

		// colors
		1, 0, 0,
		1, 0, 0,
		1, 0, 0,

		0, 1, 0,
		0, 1, 0,
		0, 1, 0,

		0, 0, 1,
		0, 0, 1,
		0, 0, 1,
	},
}

// Rectangular prism, one color per face.
var prismMesh = Mesh{
	Name:  "prism",
	Count: 36,
	Vertices: []float32{
		0.25, 0.25, -1.25,
		0.25, -0.25, -1.25,
		-0.25, 0.25, -1.25,

		0.25, -0.25, -1.25,
		-0.25, -0.25, -1.25,
		-0.25, 0.25, -1.25,

		0.25, 0.25, -2.75,
		-0.25, 0.25, -2.75,
		0.25, -0.25, -2.75,

		0.25, -0.25, -2.75,
		-0.25, 0.25, -2.75,
		-0.25, -0.25, -2.75,

		-0.25, 0.25, -1.25,
		-0.25, -0.25, -1.25,
		-0.25, -0.25, -2.75,

		-0.25, 0.25, -1.25,
		-0.25, -0.25, -2.75,
		-0.25, 0.25, -2.75,

		0.25, 0.25, -1.25,
		0.25, -0.25, -2.75,
		0.25, -0.25, -1.25,

		0.25, 0.25, -1.25,
		0.25, 0.25, -2.75,
		0.25, -0.25, -2.75,

		0.25, 0.25, -2.75,
		0.25, 0.25, -1.25,
		-0.25, 0.25, -1.25,

		0.25, 0.25, -2.75,
		-0.25, 0.25, -1.25,
		-0.25, 0.25, -2.75,

		0.25, -0.25, -2.75,
		-0.25, -0.25, -1.25,
		0.25, -0.25, -1.25,

		0.25, -0.25, -2.75,
		-0.25, -0.25, -2.75,
		-0.25, -0.25, -1.25,

		// colors
		0, 0, 1,
		0, 0, 1,
		0, 0, 1,

		0, 0, 1,
		0, 0, 1,
		0, 0, 1,

		0.8, 0.8, 0.8,
		0.8, 0.8, 0.8,
		0.8, 0.8, 0.8,

		0.8, 0.8, 0.8,
		0.8, 0.8, 0.8,
		0.8, 0.8, 0.8,

		0, 1, 0,
		0, 1, 0,
		0, 1, 0,

		0, 1, 0,
		0, 1, 0,
		0, 1, 0,

		0.5, 0.5, 0,
		0.5, 0.5, 0,
		0.5, 0.5, 0,

		0.5, 0.5, 0,
		0.5, 0.5, 0,
		0.5, 0.5, 0,

		1, 0, 0,
		1, 0, 0,
		1, 0, 0,

		1, 0, 0,
		1, 0, 0,
		1, 0, 0,

		0, 1, 1,
		0, 1, 1,
		0, 1, 1,

		0, 1, 1,
		0, 1, 1,
		0, 1, 1,
	},
}
