// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"

	"github.com/dacolabs/recschema/internal/jschema"
)

// maxDepth bounds recursion through the type graph. Cycles through record
// types are broken by the $defs memo, so only pathologically deep nesting
// can get here; it fails with a DepthError instead of exhausting the stack.
const maxDepth = 500

// translation carries the per-call state threaded through the recursive
// resolve/translate calls: the root identity, the $defs table in
// first-encounter order, and the definition slot owners used for
// collision detection. A fresh translation is created for every
// GetSchema call, so concurrent translations never share state.
type translation struct {
	root     *RecordSpec
	seenRoot bool
	defs     *jschema.Fragment
	owners   map[string]*RecordSpec
	depth    int
}

func newTranslation(root *RecordSpec) *translation {
	return &translation{
		root:   root,
		defs:   jschema.New(),
		owners: map[string]*RecordSpec{root.Name: root},
	}
}

// resolveType maps a type descriptor to its schema fragment, then merges
// the field's default and annotation into the fragment's top level.
func (t *translation) resolveType(td *TypeDescriptor, hasDefault bool, defaultValue any, ann *Annotation, path string) (*jschema.Fragment, error) {
	frag, err := t.baseFragment(td, path)
	if err != nil {
		return nil, err
	}

	if hasDefault {
		rendered, err := jsonValue(defaultValue)
		if err != nil {
			return nil, &UnrepresentableDefaultError{Path: path, Value: defaultValue}
		}
		frag.Set("default", rendered)
	}
	ann.apply(frag)
	return frag, nil
}

// baseFragment produces the fragment for the bare type, before default
// and annotation merging.
func (t *translation) baseFragment(td *TypeDescriptor, path string) (*jschema.Fragment, error) {
	// Guarding here rather than at each call site covers nil elements
	// inside composites (union alternatives, tuple elements, mapping
	// values) as well as a nil top-level descriptor.
	if td == nil {
		return nil, &UnsupportedTypeError{Path: path, Detail: "missing type descriptor"}
	}

	t.depth++
	defer func() { t.depth-- }()
	if t.depth > maxDepth {
		return nil, &DepthError{Path: path, Limit: maxDepth}
	}

	switch td.Kind {
	case KindPrimitive:
		return t.primitiveFragment(td.Prim, path)

	case KindTemporal:
		return t.temporalFragment(td.Temporal, path)

	case KindRaw:
		return jschema.New(), nil

	case KindNull:
		return jschema.New().Set("type", "null"), nil

	case KindSequence:
		return t.arrayFragment(td.Elem, false, path)

	case KindSet:
		return t.arrayFragment(td.Elem, true, path)

	case KindTuple:
		return t.tupleFragment(td, path)

	case KindMapping:
		return t.mappingFragment(td, path)

	case KindEnum:
		if len(td.Members) == 0 {
			return nil, &UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("enum %q has no members", td.Name)}
		}
		return jschema.New().Set("enum", append([]any(nil), td.Members...)), nil

	case KindLiteral:
		switch len(td.Values) {
		case 0:
			return nil, &UnsupportedTypeError{Path: path, Detail: "literal type has no values"}
		case 1:
			return jschema.New().Set("const", td.Values[0]), nil
		default:
			return jschema.New().Set("enum", append([]any(nil), td.Values...)), nil
		}

	case KindOptional:
		if td.Elem == nil {
			return nil, &UnsupportedTypeError{Path: path, Detail: "optional type has no inner type"}
		}
		inner, err := t.baseFragment(td.Elem, path)
		if err != nil {
			return nil, err
		}
		return jschema.New().Set("anyOf", []any{inner, jschema.New().Set("type", "null")}), nil

	case KindUnion:
		if len(td.Alts) < 2 {
			return nil, &UnsupportedTypeError{Path: path, Detail: "union type needs at least two alternatives"}
		}
		alts := make([]any, 0, len(td.Alts))
		for _, alt := range td.Alts {
			frag, err := t.baseFragment(alt, path)
			if err != nil {
				return nil, err
			}
			alts = append(alts, frag)
		}
		return jschema.New().Set("anyOf", alts), nil

	case KindRecord:
		if td.Record == nil {
			return nil, &UnsupportedTypeError{Path: path, Detail: "record reference has no target"}
		}
		return t.recordFragment(td.Record, path)

	default:
		return nil, &UnsupportedTypeError{Path: path, Detail: "unknown type descriptor"}
	}
}

func (t *translation) primitiveFragment(p Primitive, path string) (*jschema.Fragment, error) {
	switch p {
	case PrimString:
		return jschema.New().Set("type", "string"), nil
	case PrimInt:
		return jschema.New().Set("type", "integer"), nil
	case PrimFloat:
		return jschema.New().Set("type", "number"), nil
	case PrimBool:
		return jschema.New().Set("type", "boolean"), nil
	case PrimBytes:
		return jschema.New().Set("type", "string").Set("contentEncoding", "base64"), nil
	default:
		return nil, &UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("unknown primitive kind %d", p)}
	}
}

func (t *translation) temporalFragment(temp Temporal, path string) (*jschema.Fragment, error) {
	switch temp {
	case TempDate:
		return jschema.New().Set("type", "string").Set("format", "date"), nil
	case TempDateTime:
		return jschema.New().Set("type", "string").Set("format", "date-time"), nil
	case TempTime:
		return jschema.New().Set("type", "string").Set("format", "time"), nil
	default:
		return nil, &UnsupportedTypeError{Path: path, Detail: fmt.Sprintf("unknown temporal kind %d", temp)}
	}
}

func (t *translation) arrayFragment(elem *TypeDescriptor, unique bool, path string) (*jschema.Fragment, error) {
	frag := jschema.New().Set("type", "array")
	if elem != nil {
		items, err := t.baseFragment(elem, path)
		if err != nil {
			return nil, err
		}
		frag.Set("items", items)
	}
	if unique {
		frag.Set("uniqueItems", true)
	}
	return frag, nil
}

func (t *translation) tupleFragment(td *TypeDescriptor, path string) (*jschema.Fragment, error) {
	if td.Fixed && len(td.Elems) > 0 {
		prefix := make([]any, 0, len(td.Elems))
		for _, elem := range td.Elems {
			frag, err := t.baseFragment(elem, path)
			if err != nil {
				return nil, err
			}
			prefix = append(prefix, frag)
		}
		return jschema.New().
			Set("type", "array").
			Set("prefixItems", prefix).
			Set("minItems", len(td.Elems)).
			Set("maxItems", len(td.Elems)), nil
	}
	// Variable-length tuples render the same way as sequences.
	return t.arrayFragment(td.Elem, false, path)
}

func (t *translation) mappingFragment(td *TypeDescriptor, path string) (*jschema.Fragment, error) {
	if td.Key == nil && td.Value == nil {
		return jschema.New().Set("type", "object"), nil
	}
	if td.Key == nil || td.Key.Kind != KindPrimitive || td.Key.Prim != PrimString {
		return nil, &UnsupportedTypeError{Path: path, Detail: "mapping keys must be strings"}
	}
	values, err := t.baseFragment(td.Value, path)
	if err != nil {
		return nil, err
	}
	return jschema.New().Set("type", "object").Set("additionalProperties", values), nil
}

// recordFragment resolves a record-typed field. The root record renders
// inline on first encounter and as {"allOf": [{"$ref": "#"}]} afterwards
// (its content lives at the document top level, never in $defs). Any
// other record gets a $defs entry on first encounter, reserved before
// recursing so self-references resolve instead of looping.
func (t *translation) recordFragment(spec *RecordSpec, path string) (*jschema.Fragment, error) {
	if spec == t.root {
		if t.seenRoot {
			return refFragment("#"), nil
		}
		t.seenRoot = true
		return t.translateRecord(spec, path)
	}

	if owner, ok := t.owners[spec.Name]; ok {
		if owner != spec {
			return nil, &NameCollisionError{Name: spec.Name}
		}
	} else {
		t.owners[spec.Name] = spec
		t.defs.Set(spec.Name, nil) // reserve the slot so self-references terminate
		frag, err := t.translateRecord(spec, path)
		if err != nil {
			return nil, err
		}
		t.defs.Set(spec.Name, frag)
	}
	return refFragment("#/$defs/" + spec.Name), nil
}

// refFragment wraps a $ref in allOf so annotation keys merged at the call
// site stay siblings of the reference instead of siblings of $ref.
func refFragment(ref string) *jschema.Fragment {
	return jschema.New().Set("allOf", []any{jschema.New().Set("$ref", ref)})
}
