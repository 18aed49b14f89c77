// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/recschema/internal/translate"
)

// parseSchemaTag parses a schema struct tag into an annotation. The tag
// is a comma-separated list of key=value pairs, plus the bare flags
// deprecated and uniqueItems:
//
//	schema:"title=Display name,minLength=1,maxLength=80"
//	schema:"minimum=0,exclusiveMaximum=100"
//	schema:"deprecated"
//
// Values cannot contain commas; patterns that need one belong in a
// definition file instead.
func parseSchemaTag(tag, path string) (*translate.Annotation, error) {
	if tag == "" {
		return nil, nil
	}

	ann := &translate.Annotation{}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")

		var err error
		switch key {
		case "title":
			ann.Title = value
		case "description":
			ann.Description = value
		case "pattern":
			ann.Pattern = value
		case "format":
			ann.Format = value
		case "deprecated":
			ann.Deprecated, err = boolValue(value, hasValue)
		case "uniqueItems":
			ann.UniqueItems, err = boolValue(value, hasValue)
		case "minLength":
			ann.MinLength, err = intValue(value)
		case "maxLength":
			ann.MaxLength, err = intValue(value)
		case "minItems":
			ann.MinItems, err = intValue(value)
		case "maxItems":
			ann.MaxItems, err = intValue(value)
		case "minimum":
			ann.Minimum, err = floatValue(value)
		case "maximum":
			ann.Maximum, err = floatValue(value)
		case "exclusiveMinimum":
			ann.ExclusiveMinimum, err = floatValue(value)
		case "exclusiveMaximum":
			ann.ExclusiveMaximum, err = floatValue(value)
		case "multipleOf":
			ann.MultipleOf, err = floatValue(value)
		default:
			err = fmt.Errorf("unknown schema tag key %q", key)
		}
		if err != nil {
			return nil, &translate.UnsupportedTypeError{Path: path, Detail: err.Error()}
		}
	}
	return ann, nil
}

func boolValue(value string, hasValue bool) (*bool, error) {
	b := true
	if hasValue {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q", value)
		}
		b = parsed
	}
	return &b, nil
}

func intValue(value string) (*int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	return &n, nil
}

func floatValue(value string) (*float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", value)
	}
	return &f, nil
}
