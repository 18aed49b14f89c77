// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package inspect derives record specs from Go struct types, so Go
// callers can generate schemas without writing definition files.
// Property names follow json tags, annotations come from a schema tag,
// and defaults from a default tag holding a JSON literal. Pointers map
// to optionals, time.Time to a date-time string, []byte to base64.
package inspect

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dacolabs/recschema/internal/translate"
)

var timeType = reflect.TypeOf(time.Time{})

// For builds the record spec for the struct type T.
func For[T any]() (*translate.RecordSpec, error) {
	return Describe(reflect.TypeOf((*T)(nil)).Elem())
}

// Describe builds the record spec for a struct type. Nested and
// self-referential structs are memoized by reflect.Type, so a type
// reached twice yields the same *RecordSpec and translates once.
func Describe(t reflect.Type) (*translate.RecordSpec, error) {
	if t.Kind() != reflect.Struct {
		return nil, &translate.UnsupportedTypeError{Detail: fmt.Sprintf("%s is not a struct type", t)}
	}
	d := &describer{seen: make(map[reflect.Type]*translate.RecordSpec)}
	return d.describeStruct(t, "")
}

type describer struct {
	seen map[reflect.Type]*translate.RecordSpec
}

func (d *describer) describeStruct(t reflect.Type, path string) (*translate.RecordSpec, error) {
	if spec, ok := d.seen[t]; ok {
		return spec, nil
	}
	if t.Name() == "" {
		return nil, &translate.UnsupportedTypeError{Path: path, Detail: "anonymous struct types are not supported"}
	}

	spec := &translate.RecordSpec{Name: t.Name()}
	d.seen[t] = spec // register before recursing so self-references resolve

	fields, err := d.describeFields(t, path)
	if err != nil {
		return nil, err
	}
	spec.Fields = fields
	return spec, nil
}

func (d *describer) describeFields(t reflect.Type, path string) ([]translate.FieldSpec, error) {
	var fields []translate.FieldSpec
	for i := range t.NumField() {
		sf := t.Field(i)

		// Untagged embedded structs flatten, as encoding/json does. This
		// includes embedded fields of unexported struct types, whose
		// exported fields still promote.
		if sf.Anonymous && !hasJSONName(sf) {
			et := sf.Type
			isPtr := et.Kind() == reflect.Ptr
			if isPtr {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct && et != timeType && (sf.IsExported() || !isPtr) {
				embedded, err := d.describeFields(et, path)
				if err != nil {
					return nil, err
				}
				fields = append(fields, embedded...)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}

		name, skip := jsonName(sf)
		if skip {
			continue
		}

		fieldPath := joinPath(path, name)
		td, err := d.describeType(sf.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		ann, err := parseSchemaTag(sf.Tag.Get("schema"), fieldPath)
		if err != nil {
			return nil, err
		}

		field := translate.FieldSpec{Name: name, Type: td, Annotation: ann}
		if raw, ok := sf.Tag.Lookup("default"); ok {
			field.HasDefault = true
			field.Default = parseDefault(raw)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// describeType maps a Go type to a type descriptor.
func (d *describer) describeType(t reflect.Type, path string) (*translate.TypeDescriptor, error) {
	if t == timeType {
		return translate.DateTime(), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return translate.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return translate.Int(), nil
	case reflect.Float32, reflect.Float64:
		return translate.Float(), nil
	case reflect.String:
		return translate.String(), nil

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return translate.Bytes(), nil
		}
		elem, err := d.describeType(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return translate.Sequence(elem), nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, &translate.UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("map key type %s is not a string", t.Key())}
		}
		value, err := d.describeType(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return translate.Mapping(translate.String(), value), nil

	case reflect.Ptr:
		inner, err := d.describeType(t.Elem(), path)
		if err != nil {
			return nil, err
		}
		return translate.Optional(inner), nil

	case reflect.Struct:
		spec, err := d.describeStruct(t, path)
		if err != nil {
			return nil, err
		}
		return translate.Record(spec), nil

	case reflect.Interface:
		if t.NumMethod() == 0 {
			return translate.Raw(), nil
		}
		return nil, &translate.UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("interface type %s", t)}

	default:
		return nil, &translate.UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("Go type %s", t)}
	}
}

// jsonName returns the property name for a struct field, honoring json
// tags the way encoding/json does.
func jsonName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	if tag != "" {
		return tag, false
	}
	return sf.Name, false
}

func hasJSONName(sf reflect.StructField) bool {
	tag := sf.Tag.Get("json")
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag != ""
}

// parseDefault reads a default tag as a JSON literal, falling back to
// the raw string so `default:"draft"` works without inner quotes.
func parseDefault(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
