// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fields

import (
	"cogentcore.org/zinc/base/errors"
	"cogentcore.org/zinc/region"
)

// Operator is a field combining the values of one or two source fields
// component by component.
type Operator struct {
	region.FieldBase
	op      Op
	sources []region.Field
}

// Op is the operation of an [Operator] field.
type Op int32

const (
	// OpNot is true where its source is false.
	OpNot Op = iota

	// OpAnd is true where both sources are true.
	OpAnd

	// OpOr is true where either source is true.
	OpOr

	// OpGreaterThan is true where the first source is greater than the second.
	OpGreaterThan

	// OpLessThan is true where the first source is less than the second.
	OpLessThan
)

// NewNot returns a field that is true where the source is false.
func NewNot(source region.Field) (*Operator, error) {
	return newOperator(OpNot, source)
}

// NewAnd returns a field that is true where both sources are true.
func NewAnd(a, b region.Field) (*Operator, error) {
	return newOperator(OpAnd, a, b)
}

// NewOr returns a field that is true where either source is true.
func NewOr(a, b region.Field) (*Operator, error) {
	return newOperator(OpOr, a, b)
}

// NewGreaterThan returns a field that is true, per component,
// where a is greater than b.
func NewGreaterThan(a, b region.Field) (*Operator, error) {
	return newOperator(OpGreaterThan, a, b)
}

// NewLessThan returns a field that is true, per component,
// where a is less than b.
func NewLessThan(a, b region.Field) (*Operator, error) {
	return newOperator(OpLessThan, a, b)
}

func newOperator(op Op, sources ...region.Field) (*Operator, error) {
	if len(sources) == 0 || sources[0] == nil {
		return nil, errors.Argument("nil source field")
	}
	fm := sources[0].AsFieldBase().Fieldmodule()
	if err := checkSources(fm, sources...); err != nil {
		return nil, err
	}
	if len(sources) == 2 && (op == OpGreaterThan || op == OpLessThan) &&
		sources[0].NumComponents() != sources[1].NumComponents() {
		return nil, errors.Argument("%v sources must have the same number of components", op)
	}
	f := &Operator{op: op, sources: sources}
	region.InitField(f, fm)
	return f, nil
}

// Op returns the operation.
func (f *Operator) Op() Op { return f.op }

func (f *Operator) NumComponents() int {
	if f.op == OpGreaterThan || f.op == OpLessThan {
		return f.sources[0].NumComponents()
	}
	return 1
}

func (f *Operator) Evaluate(loc region.Location) ([]float64, error) {
	vals := make([][]float64, len(f.sources))
	for i, s := range f.sources {
		v, err := s.Evaluate(loc)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	switch f.op {
	case OpNot:
		return []float64{boolValue(!region.IsTrue(vals[0]))}, nil
	case OpAnd:
		return []float64{boolValue(region.IsTrue(vals[0]) && region.IsTrue(vals[1]))}, nil
	case OpOr:
		return []float64{boolValue(region.IsTrue(vals[0]) || region.IsTrue(vals[1]))}, nil
	}
	res := make([]float64, len(vals[0]))
	for c := range res {
		if f.op == OpGreaterThan {
			res[c] = boolValue(vals[0][c] > vals[1][c])
		} else {
			res[c] = boolValue(vals[0][c] < vals[1][c])
		}
	}
	return res, nil
}
