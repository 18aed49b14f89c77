// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "fmt"

// UnsupportedTypeError reports a type descriptor the resolver cannot map
// to a schema fragment. Path is the dotted field path from the root.
type UnsupportedTypeError struct {
	Path   string
	Detail string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type at %s: %s", pathOrRoot(e.Path), e.Detail)
}

// NameCollisionError reports two distinct record types sharing the same
// definition name.
type NameCollisionError struct {
	Name string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("definition name %q is used by two distinct record types", e.Name)
}

// UnrepresentableDefaultError reports a field default that cannot be
// rendered as a JSON-compatible literal.
type UnrepresentableDefaultError struct {
	Path  string
	Value any
}

func (e *UnrepresentableDefaultError) Error() string {
	return fmt.Sprintf("default value at %s is not JSON-compatible: %T", pathOrRoot(e.Path), e.Value)
}

// DepthError reports a type graph nested beyond the engine's recursion
// budget. Genuine cycles are broken by the $defs memo; hitting this bound
// means pathological nesting depth, not a cycle.
type DepthError struct {
	Path  string
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("type nesting at %s exceeds the depth limit of %d", pathOrRoot(e.Path), e.Limit)
}

func pathOrRoot(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
