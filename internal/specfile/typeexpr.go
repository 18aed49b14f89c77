// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package specfile

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dacolabs/recschema/internal/translate"
)

// ParseType parses a type expression like "list[str]", "dict[str, int]",
// "tuple[int, ...]", "optional[Book]" or "literal[1, 'two', null]" into a
// type descriptor. Names that are not built in are resolved through
// lookup, which the loader backs with the file's records and enums.
func ParseType(expr string, lookup func(name string) (*translate.TypeDescriptor, bool)) (*translate.TypeDescriptor, error) {
	p := &typeParser{input: expr, lookup: lookup}
	td, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", expr, err)
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("invalid type %q: unexpected %q", expr, p.input[p.pos:])
	}
	return td, nil
}

type typeParser struct {
	input  string
	pos    int
	lookup func(string) (*translate.TypeDescriptor, bool)
}

func (p *typeParser) parseExpr() (*translate.TypeDescriptor, error) {
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(name, "literal") {
		return p.parseLiteral()
	}

	var args []*translate.TypeDescriptor
	variadic := false
	if p.peek() == '[' {
		args, variadic, err = p.parseArgs()
		if err != nil {
			return nil, err
		}
	}

	if variadic && !strings.EqualFold(name, "tuple") {
		return nil, fmt.Errorf("%q does not take a ... argument", name)
	}

	return p.construct(name, args, variadic)
}

func (p *typeParser) construct(name string, args []*translate.TypeDescriptor, variadic bool) (*translate.TypeDescriptor, error) {
	scalar := func(td *translate.TypeDescriptor) (*translate.TypeDescriptor, error) {
		if len(args) > 0 {
			return nil, fmt.Errorf("%q takes no arguments", name)
		}
		return td, nil
	}

	switch strings.ToLower(name) {
	case "str", "string":
		return scalar(translate.String())
	case "int", "integer":
		return scalar(translate.Int())
	case "float", "number":
		return scalar(translate.Float())
	case "bool", "boolean":
		return scalar(translate.Bool())
	case "bytes":
		return scalar(translate.Bytes())
	case "date":
		return scalar(translate.Date())
	case "datetime":
		return scalar(translate.DateTime())
	case "time":
		return scalar(translate.Time())
	case "any":
		return scalar(translate.Raw())
	case "none", "null":
		return scalar(translate.Null())

	case "list":
		switch len(args) {
		case 0:
			return translate.Sequence(nil), nil
		case 1:
			return translate.Sequence(args[0]), nil
		default:
			return nil, fmt.Errorf("list takes at most one argument, got %d", len(args))
		}
	case "set":
		switch len(args) {
		case 0:
			return translate.Set(nil), nil
		case 1:
			return translate.Set(args[0]), nil
		default:
			return nil, fmt.Errorf("set takes at most one argument, got %d", len(args))
		}
	case "dict", "map":
		switch len(args) {
		case 0:
			return translate.Mapping(nil, nil), nil
		case 2:
			return translate.Mapping(args[0], args[1]), nil
		default:
			return nil, fmt.Errorf("dict takes zero or two arguments, got %d", len(args))
		}
	case "tuple":
		switch {
		case len(args) == 0:
			return translate.VarTuple(nil), nil
		case variadic && len(args) == 1:
			return translate.VarTuple(args[0]), nil
		case variadic:
			return nil, fmt.Errorf("tuple[T, ...] takes exactly one element type")
		default:
			return translate.Tuple(args...), nil
		}
	case "optional":
		if len(args) != 1 {
			return nil, fmt.Errorf("optional takes exactly one argument, got %d", len(args))
		}
		return translate.Optional(args[0]), nil
	case "union":
		if len(args) < 2 {
			return nil, fmt.Errorf("union takes at least two arguments, got %d", len(args))
		}
		return translate.Union(args...), nil
	}

	if len(args) > 0 {
		return nil, fmt.Errorf("%q takes no arguments", name)
	}
	if td, ok := p.lookup(name); ok {
		return td, nil
	}
	return nil, fmt.Errorf("unknown type %q", name)
}

// parseArgs reads a bracketed type argument list. A trailing "..." marks
// the variadic tuple form.
func (p *typeParser) parseArgs() ([]*translate.TypeDescriptor, bool, error) {
	p.pos++ // consume '['
	var args []*translate.TypeDescriptor
	variadic := false
	for {
		p.skipSpace()
		if strings.HasPrefix(p.input[p.pos:], "...") {
			p.pos += 3
			variadic = true
		} else {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, false, err
			}
			if variadic {
				return nil, false, fmt.Errorf("... must be the last argument")
			}
			args = append(args, arg)
		}
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return args, variadic, nil
		default:
			return nil, false, fmt.Errorf("expected ',' or ']' at position %d", p.pos)
		}
	}
}

// parseLiteral reads literal[...] where arguments are scalar values, not
// types: numbers, quoted strings, booleans, and null.
func (p *typeParser) parseLiteral() (*translate.TypeDescriptor, error) {
	p.skipSpace()
	if p.peek() != '[' {
		return nil, fmt.Errorf("literal requires a value list")
	}
	p.pos++
	var values []any
	for {
		p.skipSpace()
		v, err := p.scalar()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return translate.Literal(values...), nil
		default:
			return nil, fmt.Errorf("expected ',' or ']' at position %d", p.pos)
		}
	}
}

func (p *typeParser) scalar() (any, error) {
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		return p.quoted(c)
	default:
		start := p.pos
		for p.pos < len(p.input) && !strings.ContainsRune(",] \t", rune(p.input[p.pos])) {
			p.pos++
		}
		word := p.input[start:p.pos]
		switch {
		case word == "":
			return nil, fmt.Errorf("expected a literal value at position %d", start)
		case strings.EqualFold(word, "true"):
			return true, nil
		case strings.EqualFold(word, "false"):
			return false, nil
		case strings.EqualFold(word, "null") || strings.EqualFold(word, "none"):
			return nil, nil
		}
		if n, err := strconv.ParseInt(word, 10, 64); err == nil {
			return int(n), nil
		}
		if f, err := strconv.ParseFloat(word, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("invalid literal value %q", word)
	}
}

func (p *typeParser) quoted(quote byte) (string, error) {
	p.pos++ // opening quote
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			s := p.input[start:p.pos]
			p.pos++
			return s, nil
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated string starting at position %d", start-1)
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		r := rune(p.input[p.pos])
		if unicode.IsLetter(r) || r == '_' || (p.pos > start && unicode.IsDigit(r)) {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", fmt.Errorf("expected a type name at position %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *typeParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
