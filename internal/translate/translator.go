// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/recschema/internal/jschema"

// translateRecord assembles the object fragment for a record type:
// properties in declaration order, required listing exactly the fields
// without a default, record-level title/description merged in place.
func (t *translation) translateRecord(spec *RecordSpec, path string) (*jschema.Fragment, error) {
	frag := jschema.New().
		Set("type", "object").
		Set("title", spec.Name)

	if cfg := spec.Config; cfg != nil {
		if cfg.Title != "" {
			frag.Set("title", cfg.Title)
		}
		if cfg.Description != "" {
			frag.Set("description", cfg.Description)
		}
	}

	properties := jschema.New()
	var required []string
	for _, field := range spec.Fields {
		fieldFrag, err := t.resolveType(field.Type, field.HasDefault, field.Default, field.Annotation, joinPath(path, field.Name))
		if err != nil {
			return nil, err
		}
		properties.Set(field.Name, fieldFrag)
		if !field.HasDefault {
			required = append(required, field.Name)
		}
	}

	frag.Set("properties", properties)
	if len(required) > 0 {
		frag.Set("required", required)
	}
	return frag, nil
}
