// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/recschema/internal/jschema"

// Annotation is schema-affecting metadata attached to a field or record.
// Zero values ("" and nil) mean the attribute is unset. Constraint keys
// merge into the top level of the fragment the field's type resolves to;
// an attribute that collides with a base keyword (format, uniqueItems)
// replaces it without moving it.
type Annotation struct {
	Title       string
	Description string
	Examples    []any
	Deprecated  *bool

	// string constraints
	MinLength *int
	MaxLength *int
	Pattern   string
	Format    string

	// numeric constraints
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	// array constraints
	MinItems    *int
	MaxItems    *int
	UniqueItems *bool
}

// apply merges the set attributes into frag. The attribute order matches
// the field order above so output is deterministic.
func (a *Annotation) apply(frag *jschema.Fragment) {
	if a == nil {
		return
	}
	if a.Title != "" {
		frag.Set("title", a.Title)
	}
	if a.Description != "" {
		frag.Set("description", a.Description)
	}
	if a.Examples != nil {
		frag.Set("examples", a.Examples)
	}
	if a.Deprecated != nil {
		frag.Set("deprecated", *a.Deprecated)
	}
	if a.MinLength != nil {
		frag.Set("minLength", *a.MinLength)
	}
	if a.MaxLength != nil {
		frag.Set("maxLength", *a.MaxLength)
	}
	if a.Pattern != "" {
		frag.Set("pattern", a.Pattern)
	}
	if a.Format != "" {
		frag.Set("format", a.Format)
	}
	if a.Minimum != nil {
		frag.Set("minimum", *a.Minimum)
	}
	if a.Maximum != nil {
		frag.Set("maximum", *a.Maximum)
	}
	if a.ExclusiveMinimum != nil {
		frag.Set("exclusiveMinimum", *a.ExclusiveMinimum)
	}
	if a.ExclusiveMaximum != nil {
		frag.Set("exclusiveMaximum", *a.ExclusiveMaximum)
	}
	if a.MultipleOf != nil {
		frag.Set("multipleOf", *a.MultipleOf)
	}
	if a.MinItems != nil {
		frag.Set("minItems", *a.MinItems)
	}
	if a.MaxItems != nil {
		frag.Set("maxItems", *a.MaxItems)
	}
	if a.UniqueItems != nil {
		frag.Set("uniqueItems", *a.UniqueItems)
	}
}
