// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

// Shape is the shape of an element. All shapes are linear Lagrange
// (2, 4 or 8 nodes) with local nodes ordered xi1 fastest.
type Shape int32

const (
	// ShapeInvalid is the zero value.
	ShapeInvalid Shape = iota

	// ShapeLine is a 1D line element with 2 nodes.
	ShapeLine

	// ShapeSquare is a 2D square element with 4 nodes.
	ShapeSquare

	// ShapeCube is a 3D cube element with 8 nodes.
	ShapeCube
)

// ShapeForDimension returns the shape of the given dimension.
func ShapeForDimension(dim int) Shape {
	if dim < 1 || dim > 3 {
		return ShapeInvalid
	}
	return Shape(dim)
}

// Dimension returns the number of xi coordinates of the shape.
func (s Shape) Dimension() int {
	if !s.IsValid() || s == ShapeInvalid {
		return 0
	}
	return int(s)
}

// NumNodes returns the number of local nodes.
func (s Shape) NumNodes() int {
	d := s.Dimension()
	if d == 0 {
		return 0
	}
	return 1 << d
}

// NumFaces returns the number of faces: two per xi direction.
// The faces of a line are its end nodes.
func (s Shape) NumFaces() int {
	return 2 * s.Dimension()
}

// FaceShape returns the shape of the faces of this shape,
// or ShapeInvalid for a line.
func (s Shape) FaceShape() Shape {
	return ShapeForDimension(s.Dimension() - 1)
}

// FaceNodes returns the local node indexes on the given face, in the
// face's own local node order. Faces are numbered xi1=0, xi1=1, xi2=0,
// xi2=1, xi3=0, xi3=1.
func (s Shape) FaceNodes(face int) []int {
	if face < 0 || face >= s.NumFaces() {
		return nil
	}
	axis, side := face/2, face%2
	var nodes []int
	for ln := 0; ln < s.NumNodes(); ln++ {
		if (ln>>axis)&1 == side {
			nodes = append(nodes, ln)
		}
	}
	return nodes
}

// Basis returns the weights of each local node for interpolating
// at the given xi location.
func (s Shape) Basis(xi []float64) []float64 {
	d := s.Dimension()
	w := make([]float64, s.NumNodes())
	for ln := range w {
		w[ln] = 1
		for a := 0; a < d; a++ {
			x := 0.5
			if a < len(xi) {
				x = xi[a]
			}
			if (ln>>a)&1 == 1 {
				w[ln] *= x
			} else {
				w[ln] *= 1 - x
			}
		}
	}
	return w
}

// FaceType identifies which face of a parent an element is,
// for face-based conditions.
type FaceType int32

const (
	// FaceTypeInvalid is an unspecified face type.
	FaceTypeInvalid FaceType = iota

	// FaceTypeAll matches all elements.
	FaceTypeAll

	// FaceTypeAnyFace matches elements that are a face of any parent.
	FaceTypeAnyFace

	// FaceTypeNoFace matches elements that are not a face of any parent.
	FaceTypeNoFace

	// FaceTypeXi1_0 is the face where xi1 = 0.
	FaceTypeXi1_0

	// FaceTypeXi1_1 is the face where xi1 = 1.
	FaceTypeXi1_1

	// FaceTypeXi2_0 is the face where xi2 = 0.
	FaceTypeXi2_0

	// FaceTypeXi2_1 is the face where xi2 = 1.
	FaceTypeXi2_1

	// FaceTypeXi3_0 is the face where xi3 = 0.
	FaceTypeXi3_0

	// FaceTypeXi3_1 is the face where xi3 = 1.
	FaceTypeXi3_1
)

// FaceIndex returns the face number for a specific xi face type,
// or -1 for the other types.
func (f FaceType) FaceIndex() int {
	if f < FaceTypeXi1_0 || f > FaceTypeXi3_1 {
		return -1
	}
	return int(f - FaceTypeXi1_0)
}

// FaceTypeForIndex returns the xi face type for the given face number.
func FaceTypeForIndex(face int) FaceType {
	if face < 0 || face > 5 {
		return FaceTypeInvalid
	}
	return FaceTypeXi1_0 + FaceType(face)
}
