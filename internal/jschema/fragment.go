// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides the JSON Schema document model used by the
// translation engine. Fragments keep their keys in insertion order so a
// generated schema serializes the same way on every run, with properties
// and required lists following field declaration order.
package jschema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SchemaURI is the dialect identifier attached to every generated document.
const SchemaURI = "https://json-schema.org/draft/2020-12/schema"

// Fragment is a JSON object with stable, insertion-ordered keys.
// Setting an existing key replaces its value without moving it.
type Fragment struct {
	keys   []string
	values map[string]any
}

// New returns an empty Fragment.
func New() *Fragment {
	return &Fragment{values: make(map[string]any)}
}

// Set stores value under key, appending the key if it is new.
// It returns the fragment to allow chaining.
func (f *Fragment) Set(key string, value any) *Fragment {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
	return f
}

// Get returns the value stored under key.
func (f *Fragment) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Fragment) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Len returns the number of keys.
func (f *Fragment) Len() int {
	return len(f.keys)
}

// Keys returns the keys in insertion order.
// The returned slice is shared with the fragment and must not be mutated.
func (f *Fragment) Keys() []string {
	return f.keys
}

// MarshalJSON serializes the fragment with keys in insertion order.
func (f *Fragment) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Indent serializes the fragment as indented JSON.
func (f *Fragment) Indent() ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}
