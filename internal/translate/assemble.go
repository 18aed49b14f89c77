// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/recschema/internal/jschema"

// GetSchema translates root into a complete JSON Schema 2020-12 document.
// The root record's object keys sit at the document top level; every
// other record reached during translation gets a $defs entry, referenced
// via $ref. The result is deterministic: translating the same root twice
// yields byte-identical output.
//
// Translation is a pure function of its input; on error no partial
// document is returned.
func GetSchema(root *RecordSpec) (*jschema.Fragment, error) {
	t := newTranslation(root)

	body, err := t.recordFragment(root, "")
	if err != nil {
		return nil, err
	}

	doc := jschema.New().Set("$schema", jschema.SchemaURI)
	for _, key := range body.Keys() {
		v, _ := body.Get(key)
		doc.Set(key, v)
	}
	if t.defs.Len() > 0 {
		doc.Set("$defs", t.defs)
	}
	return doc, nil
}
