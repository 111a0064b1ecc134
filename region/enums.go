// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"errors"
	"strconv"
	"strings"
)

var _ShapeValues = []Shape{ShapeInvalid, ShapeLine, ShapeSquare, ShapeCube}
var _ShapeNameToValueMap = map[string]Shape{`Invalid`: ShapeInvalid, `invalid`: ShapeInvalid, `Line`: ShapeLine, `line`: ShapeLine, `Square`: ShapeSquare, `square`: ShapeSquare, `Cube`: ShapeCube, `cube`: ShapeCube}
var _ShapeDescMap = map[Shape]string{ShapeInvalid: `ShapeInvalid is the zero value.`, ShapeLine: `ShapeLine is a 1D line element with 2 nodes.`, ShapeSquare: `ShapeSquare is a 2D square element with 4 nodes.`, ShapeCube: `ShapeCube is a 3D cube element with 8 nodes.`}
var _ShapeMap = map[Shape]string{ShapeInvalid: `Invalid`, ShapeLine: `Line`, ShapeSquare: `Square`, ShapeCube: `Cube`}

// String returns the string representation of this Shape value.
func (i Shape) String() string {
	if str, ok := _ShapeMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Shape value from its string representation,
// and returns an error if the string is invalid.
func (i *Shape) SetString(s string) error {
	if val, ok := _ShapeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ShapeNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type Shape")
}

// Int64 returns the Shape value as an int64.
func (i Shape) Int64() int64 { return int64(i) }

// SetInt64 sets the Shape value from an int64.
func (i *Shape) SetInt64(in int64) { *i = Shape(in) }

// Desc returns the description of the Shape value.
func (i Shape) Desc() string {
	if str, ok := _ShapeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// ShapeValues returns all possible values for the type Shape.
func ShapeValues() []Shape { return _ShapeValues }

// IsValid returns whether the value is a valid option for type Shape.
func (i Shape) IsValid() bool {
	_, ok := _ShapeMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Shape) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Shape) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _FaceTypeValues = []FaceType{FaceTypeInvalid, FaceTypeAll, FaceTypeAnyFace, FaceTypeNoFace, FaceTypeXi1_0, FaceTypeXi1_1, FaceTypeXi2_0, FaceTypeXi2_1, FaceTypeXi3_0, FaceTypeXi3_1}
var _FaceTypeNameToValueMap = map[string]FaceType{`Invalid`: FaceTypeInvalid, `invalid`: FaceTypeInvalid, `All`: FaceTypeAll, `all`: FaceTypeAll, `AnyFace`: FaceTypeAnyFace, `anyface`: FaceTypeAnyFace, `NoFace`: FaceTypeNoFace, `noface`: FaceTypeNoFace, `Xi1_0`: FaceTypeXi1_0, `xi1_0`: FaceTypeXi1_0, `Xi1_1`: FaceTypeXi1_1, `xi1_1`: FaceTypeXi1_1, `Xi2_0`: FaceTypeXi2_0, `xi2_0`: FaceTypeXi2_0, `Xi2_1`: FaceTypeXi2_1, `xi2_1`: FaceTypeXi2_1, `Xi3_0`: FaceTypeXi3_0, `xi3_0`: FaceTypeXi3_0, `Xi3_1`: FaceTypeXi3_1, `xi3_1`: FaceTypeXi3_1}
var _FaceTypeDescMap = map[FaceType]string{FaceTypeInvalid: `FaceTypeInvalid is an unspecified face type.`, FaceTypeAll: `FaceTypeAll matches all elements.`, FaceTypeAnyFace: `FaceTypeAnyFace matches elements that are a face of any parent.`, FaceTypeNoFace: `FaceTypeNoFace matches elements that are not a face of any parent.`, FaceTypeXi1_0: `FaceTypeXi1_0 is the face where xi1 = 0.`, FaceTypeXi1_1: `FaceTypeXi1_1 is the face where xi1 = 1.`, FaceTypeXi2_0: `FaceTypeXi2_0 is the face where xi2 = 0.`, FaceTypeXi2_1: `FaceTypeXi2_1 is the face where xi2 = 1.`, FaceTypeXi3_0: `FaceTypeXi3_0 is the face where xi3 = 0.`, FaceTypeXi3_1: `FaceTypeXi3_1 is the face where xi3 = 1.`}
var _FaceTypeMap = map[FaceType]string{FaceTypeInvalid: `Invalid`, FaceTypeAll: `All`, FaceTypeAnyFace: `AnyFace`, FaceTypeNoFace: `NoFace`, FaceTypeXi1_0: `Xi1_0`, FaceTypeXi1_1: `Xi1_1`, FaceTypeXi2_0: `Xi2_0`, FaceTypeXi2_1: `Xi2_1`, FaceTypeXi3_0: `Xi3_0`, FaceTypeXi3_1: `Xi3_1`}

// String returns the string representation of this FaceType value.
func (i FaceType) String() string {
	if str, ok := _FaceTypeMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the FaceType value from its string representation,
// and returns an error if the string is invalid.
func (i *FaceType) SetString(s string) error {
	if val, ok := _FaceTypeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _FaceTypeNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type FaceType")
}

// Int64 returns the FaceType value as an int64.
func (i FaceType) Int64() int64 { return int64(i) }

// SetInt64 sets the FaceType value from an int64.
func (i *FaceType) SetInt64(in int64) { *i = FaceType(in) }

// Desc returns the description of the FaceType value.
func (i FaceType) Desc() string {
	if str, ok := _FaceTypeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// FaceTypeValues returns all possible values for the type FaceType.
func FaceTypeValues() []FaceType { return _FaceTypeValues }

// IsValid returns whether the value is a valid option for type FaceType.
func (i FaceType) IsValid() bool {
	_, ok := _FaceTypeMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i FaceType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *FaceType) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _DomainTypeValues = []DomainType{DomainTypeInvalid, DomainTypeNodes, DomainTypeDatapoints, DomainTypeMesh1D, DomainTypeMesh2D, DomainTypeMesh3D}
var _DomainTypeNameToValueMap = map[string]DomainType{`Invalid`: DomainTypeInvalid, `invalid`: DomainTypeInvalid, `Nodes`: DomainTypeNodes, `nodes`: DomainTypeNodes, `Datapoints`: DomainTypeDatapoints, `datapoints`: DomainTypeDatapoints, `Mesh1D`: DomainTypeMesh1D, `mesh1d`: DomainTypeMesh1D, `Mesh2D`: DomainTypeMesh2D, `mesh2d`: DomainTypeMesh2D, `Mesh3D`: DomainTypeMesh3D, `mesh3d`: DomainTypeMesh3D}
var _DomainTypeDescMap = map[DomainType]string{DomainTypeInvalid: `DomainTypeInvalid is an unspecified domain.`, DomainTypeNodes: `DomainTypeNodes is the nodes nodeset.`, DomainTypeDatapoints: `DomainTypeDatapoints is the datapoints nodeset.`, DomainTypeMesh1D: `DomainTypeMesh1D is the 1D mesh.`, DomainTypeMesh2D: `DomainTypeMesh2D is the 2D mesh.`, DomainTypeMesh3D: `DomainTypeMesh3D is the 3D mesh.`}
var _DomainTypeMap = map[DomainType]string{DomainTypeInvalid: `Invalid`, DomainTypeNodes: `Nodes`, DomainTypeDatapoints: `Datapoints`, DomainTypeMesh1D: `Mesh1D`, DomainTypeMesh2D: `Mesh2D`, DomainTypeMesh3D: `Mesh3D`}

// String returns the string representation of this DomainType value.
func (i DomainType) String() string {
	if str, ok := _DomainTypeMap[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the DomainType value from its string representation,
// and returns an error if the string is invalid.
func (i *DomainType) SetString(s string) error {
	if val, ok := _DomainTypeNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _DomainTypeNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type DomainType")
}

// Int64 returns the DomainType value as an int64.
func (i DomainType) Int64() int64 { return int64(i) }

// SetInt64 sets the DomainType value from an int64.
func (i *DomainType) SetInt64(in int64) { *i = DomainType(in) }

// Desc returns the description of the DomainType value.
func (i DomainType) Desc() string {
	if str, ok := _DomainTypeDescMap[i]; ok {
		return str
	}
	return i.String()
}

// DomainTypeValues returns all possible values for the type DomainType.
func DomainTypeValues() []DomainType { return _DomainTypeValues }

// IsValid returns whether the value is a valid option for type DomainType.
func (i DomainType) IsValid() bool {
	_, ok := _DomainTypeMap[i]
	return ok
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i DomainType) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *DomainType) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
