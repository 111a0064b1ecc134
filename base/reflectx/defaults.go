// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/zinc/base/errors"
)

// SetFromDefaultTags sets the fields of the given struct pointer from
// their `default:` struct tag values. Nested structs without a tag are
// filled recursively. Fields that cannot be set are reported in the
// returned error, and the remaining fields are still set.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return errors.Argument("SetFromDefaultTags: need a non-nil pointer, not %T", obj)
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return errors.Argument("SetFromDefaultTags: %T is not a struct", obj)
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if fv.Kind() == reflect.Struct && !ok {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets the given settable value from a string, using
// [encoding.TextUnmarshaler] when the value implements it.
func SetString(v reflect.Value, s string) error {
	if tu, ok := PointerValue(v).Interface().(encoding.TextUnmarshaler); ok && v.CanAddr() {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	default:
		return errors.NotImplemented("cannot set %s from a string", v.Type())
	}
	return nil
}
