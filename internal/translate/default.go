// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

var errNotJSONCompatible = errors.New("value is not JSON-compatible")

// jsonValue renders a default value into its JSON-compatible
// representation: booleans, numbers, strings, nil, and recursively for
// slices and string-keyed maps. Anything else is rejected so the caller
// can surface an UnrepresentableDefaultError.
func jsonValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return val, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			elem, err := jsonValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keys must be strings", errNotJSONCompatible)
		}
		out := make(map[string]any, rv.Len())
		for _, key := range rv.MapKeys() {
			elem, err := jsonValue(rv.MapIndex(key).Interface())
			if err != nil {
				return nil, err
			}
			out[key.String()] = elem
		}
		return out, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return jsonValue(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("%w: %T", errNotJSONCompatible, v)
	}
}
