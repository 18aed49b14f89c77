// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package specfile loads record definitions from YAML files and turns
// them into the record specs the translation engine consumes. A file
// declares named records (ordered field lists with type expressions,
// defaults, and annotation keys) and enums; records may reference each
// other, themselves, and enums by name, in any declaration order.
package specfile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/recschema/internal/translate"
)

// File is a parsed record-definition file.
type File struct {
	records map[string]*translate.RecordSpec
	enums   map[string]*translate.TypeDescriptor
	order   []string
}

// Load reads and parses a definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Record returns the record declared under name.
func (f *File) Record(name string) (*translate.RecordSpec, bool) {
	spec, ok := f.records[name]
	return spec, ok
}

// Names returns the record names in declaration order.
func (f *File) Names() []string {
	return f.order
}

// Enum returns the enum declared under name.
func (f *File) Enum(name string) (*translate.TypeDescriptor, bool) {
	td, ok := f.enums[name]
	return td, ok
}

// EnumNames returns the enum names, sorted.
func (f *File) EnumNames() []string {
	names := make([]string, 0, len(f.enums))
	for name := range f.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// document mirrors the YAML file shape. Records are decoded through a
// yaml.Node so their declaration order survives.
type document struct {
	Enums   map[string][]any `yaml:"enums"`
	Records yaml.Node        `yaml:"records"`
}

type recordDoc struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Fields      []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Default yaml.Node `yaml:"default"`

	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Examples         []any    `yaml:"examples"`
	Deprecated       *bool    `yaml:"deprecated"`
	MinLength        *int     `yaml:"minLength"`
	MaxLength        *int     `yaml:"maxLength"`
	Pattern          string   `yaml:"pattern"`
	Format           string   `yaml:"format"`
	Minimum          *float64 `yaml:"minimum"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum"`
	MultipleOf       *float64 `yaml:"multipleOf"`
	MinItems         *int     `yaml:"minItems"`
	MaxItems         *int     `yaml:"maxItems"`
	UniqueItems      *bool    `yaml:"uniqueItems"`
}

// Parse parses definition file contents. Types resolve in a second pass,
// so forward references between records are fine.
func Parse(data []byte) (*File, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	f := &File{
		records: make(map[string]*translate.RecordSpec),
		enums:   make(map[string]*translate.TypeDescriptor),
	}

	for name, members := range doc.Enums {
		if len(members) == 0 {
			return nil, fmt.Errorf("enum %q has no members", name)
		}
		f.enums[name] = translate.Enum(name, members...)
	}

	names, bodies, err := recordEntries(&doc.Records)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no records defined")
	}

	// First pass: create every record so type expressions can reference
	// records declared later in the file.
	for _, name := range names {
		if _, ok := f.enums[name]; ok {
			return nil, fmt.Errorf("%q is declared as both a record and an enum", name)
		}
		f.records[name] = &translate.RecordSpec{Name: name}
		f.order = append(f.order, name)
	}

	// Second pass: fields and annotations.
	for i, name := range names {
		if err := f.fillRecord(f.records[name], bodies[i]); err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
	}
	return f, nil
}

// recordEntries splits the records mapping node into ordered name/body
// pairs.
func recordEntries(node *yaml.Node) ([]string, []recordDoc, error) {
	if node.IsZero() {
		return nil, nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nil, fmt.Errorf("records must be a mapping of name to definition")
	}
	var names []string
	var bodies []recordDoc
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return nil, nil, err
		}
		var body recordDoc
		if err := node.Content[i+1].Decode(&body); err != nil {
			return nil, nil, fmt.Errorf("record %q: %w", name, err)
		}
		names = append(names, name)
		bodies = append(bodies, body)
	}
	return names, bodies, nil
}

func (f *File) fillRecord(spec *translate.RecordSpec, body recordDoc) error {
	if body.Title != "" || body.Description != "" {
		spec.Config = &translate.Annotation{Title: body.Title, Description: body.Description}
	}

	seen := make(map[string]bool, len(body.Fields))
	for _, fd := range body.Fields {
		if fd.Name == "" {
			return fmt.Errorf("field without a name")
		}
		if seen[fd.Name] {
			return fmt.Errorf("field %q declared twice", fd.Name)
		}
		seen[fd.Name] = true
		if fd.Type == "" {
			return fmt.Errorf("field %q has no type", fd.Name)
		}

		td, err := ParseType(fd.Type, f.lookupType)
		if err != nil {
			return fmt.Errorf("field %q: %w", fd.Name, err)
		}

		field := translate.FieldSpec{
			Name:       fd.Name,
			Type:       td,
			Annotation: fd.annotation(),
		}
		if !fd.Default.IsZero() {
			var v any
			if err := fd.Default.Decode(&v); err != nil {
				return fmt.Errorf("field %q default: %w", fd.Name, err)
			}
			field.HasDefault = true
			field.Default = v
		}
		spec.Fields = append(spec.Fields, field)
	}
	return nil
}

func (f *File) lookupType(name string) (*translate.TypeDescriptor, bool) {
	if spec, ok := f.records[name]; ok {
		return translate.Record(spec), true
	}
	if td, ok := f.enums[name]; ok {
		return td, true
	}
	return nil, false
}

func (fd *fieldDoc) annotation() *translate.Annotation {
	ann := &translate.Annotation{
		Title:            fd.Title,
		Description:      fd.Description,
		Examples:         fd.Examples,
		Deprecated:       fd.Deprecated,
		MinLength:        fd.MinLength,
		MaxLength:        fd.MaxLength,
		Pattern:          fd.Pattern,
		Format:           fd.Format,
		Minimum:          fd.Minimum,
		Maximum:          fd.Maximum,
		ExclusiveMinimum: fd.ExclusiveMinimum,
		ExclusiveMaximum: fd.ExclusiveMaximum,
		MultipleOf:       fd.MultipleOf,
		MinItems:         fd.MinItems,
		MaxItems:         fd.MaxItems,
		UniqueItems:      fd.UniqueItems,
	}
	empty := ann.Title == "" && ann.Description == "" && ann.Examples == nil &&
		ann.Deprecated == nil && ann.MinLength == nil && ann.MaxLength == nil &&
		ann.Pattern == "" && ann.Format == "" &&
		ann.Minimum == nil && ann.Maximum == nil &&
		ann.ExclusiveMinimum == nil && ann.ExclusiveMaximum == nil && ann.MultipleOf == nil &&
		ann.MinItems == nil && ann.MaxItems == nil && ann.UniqueItems == nil
	if empty {
		return nil
	}
	return ann
}
