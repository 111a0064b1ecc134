// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshgen generates structured meshes and reads and writes
// simple mesh descriptions.
package meshgen

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/fields"
	"cogentcore.org/zinc/region"
)

// CoordinatesName is the name of the coordinate field created by
// the generators.
const CoordinatesName = "coordinates"

// Block creates a block of nx by ny by nz cube elements, each of the
// given size, with faces and lines defined. Nodes and elements are
// numbered from 1 with x fastest, then y, then z. It returns the
// coordinate field, which is named [CoordinatesName] and managed.
func Block(fm *region.Fieldmodule, nx, ny, nz int, size float64) (*fields.NodeValue, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, errors.Argument("invalid block size %dx%dx%d", nx, ny, nz)
	}
	d := &Description{}
	node := func(i, j, k int) int {
		return 1 + i + (nx+1)*j + (nx+1)*(ny+1)*k
	}
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				d.Nodes = append(d.Nodes, Node{
					ID:          node(i, j, k),
					Coordinates: []float64{float64(i) * size, float64(j) * size, float64(k) * size},
				})
			}
		}
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				d.Elements = append(d.Elements, Element{
					ID:    1 + i + nx*j + nx*ny*k,
					Shape: region.ShapeCube,
					Nodes: []int{
						node(i, j, k), node(i+1, j, k), node(i, j+1, k), node(i+1, j+1, k),
						node(i, j, k+1), node(i+1, j, k+1), node(i, j+1, k+1), node(i+1, j+1, k+1),
					},
				})
			}
		}
	}
	return d.Build(fm)
}

// TwoCubes creates two cubes of size 10 sharing one face: 2 cube
// elements, 11 faces, 20 lines and 12 nodes.
func TwoCubes(fm *region.Fieldmodule) (*fields.NodeValue, error) {
	return Block(fm, 2, 1, 1, 10)
}
