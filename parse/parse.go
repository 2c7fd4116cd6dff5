// Package parse provides JSON document parsing support.
//
// The parser is recursive descent over a whitespace-stripped copy of the
// input, all-or-nothing: any structural violation aborts with ErrMalformed
// and no partial document.
//
// The accepted grammar is a JSON subset:
//
//	document := object | array | value
//	object   := '{' (pair (',' pair)*)? '}'
//	pair     := '"' chars '"' ':' document
//	array    := '[' (document (',' document)*)? ']'
//	value    := "true" | "false" | number | string
//	number   := digit+ ('.' digit+)?
//	string   := '"' chars* '"'
//
// Strings are taken verbatim between double quotes with no escape
// decoding, so an escaped quote inside a string is misparsed. Whitespace
// stripping toggles on unescaped quotes and shares the same limitation.
// There is no null literal, no sign and no exponent on numbers.
package parse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/axfmt/jsondoc/debug"
	"github.com/axfmt/jsondoc/ir"
)

// Parse parses d into a document tree and returns a handle to its root.
func Parse(d []byte, opts ...ParseOption) (ir.Handle, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	s := clean(d)
	if debug.Parse() {
		debug.Logf("parse %s: cleaned to %q\n", pOpts.name(), s)
	}
	off := 0
	return parseDocument(s, &off, pOpts)
}

// clean drops whitespace outside quoted spans in a single linear scan. A
// double quote toggles the in-string flag with no backslash awareness.
func clean(d []byte) []byte {
	res := make([]byte, 0, len(d))
	inString := false
	for _, c := range d {
		if c == '"' {
			inString = !inString
		}
		if !inString && isSpace(c) {
			continue
		}
		res = append(res, c)
	}
	return res
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func parseDocument(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	if *pi >= len(s) {
		return ir.Handle{}, errAt(s, *pi, opts)
	}
	switch s[*pi] {
	case '{':
		return parseObject(s, pi, opts)
	case '[':
		return parseArray(s, pi, opts)
	default:
		return parseValue(s, pi, opts)
	}
}

func parseObject(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	*pi++ // consume '{'
	obj := ir.NewObject()
	if *pi < len(s) && s[*pi] == '}' {
		*pi++
		return ir.NewHandle(obj), nil
	}
	for {
		key, err := parseKey(s, pi, opts)
		if err != nil {
			return ir.Handle{}, err
		}
		if *pi >= len(s) || s[*pi] != ':' {
			return ir.Handle{}, errAt(s, *pi, opts)
		}
		*pi++ // consume ':'
		val, err := parseDocument(s, pi, opts)
		if err != nil {
			return ir.Handle{}, err
		}
		obj.Put(key, val)
		if *pi >= len(s) {
			return ir.Handle{}, errAt(s, *pi, opts)
		}
		switch s[*pi] {
		case ',':
			*pi++
		case '}':
			*pi++
			return ir.NewHandle(obj), nil
		default:
			return ir.Handle{}, errAt(s, *pi, opts)
		}
	}
}

func parseKey(s []byte, pi *int, opts *parseOpts) (string, error) {
	if *pi >= len(s) || s[*pi] != '"' {
		return "", errAt(s, *pi, opts)
	}
	*pi++ // consume opening quote
	start := *pi
	for {
		if *pi >= len(s) {
			return "", errAt(s, *pi, opts)
		}
		if s[*pi] == '"' {
			break
		}
		*pi++
	}
	key := string(s[start:*pi])
	*pi++ // consume closing quote
	return key, nil
}

func parseArray(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	*pi++ // consume '['
	arr := ir.NewArray()
	if *pi < len(s) && s[*pi] == ']' {
		*pi++
		return ir.NewHandle(arr), nil
	}
	for {
		elt, err := parseDocument(s, pi, opts)
		if err != nil {
			return ir.Handle{}, err
		}
		arr.Append(elt)
		if *pi >= len(s) {
			return ir.Handle{}, errAt(s, *pi, opts)
		}
		switch s[*pi] {
		case ',':
			*pi++
		case ']':
			*pi++
			return ir.NewHandle(arr), nil
		default:
			return ir.Handle{}, errAt(s, *pi, opts)
		}
	}
}

func parseValue(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	rest := s[*pi:]
	switch {
	case bytes.HasPrefix(rest, []byte("true")):
		*pi += len("true")
		return ir.NewHandle(ir.FromBool(true)), nil
	case bytes.HasPrefix(rest, []byte("false")):
		*pi += len("false")
		return ir.NewHandle(ir.FromBool(false)), nil
	case isDigit(s[*pi]):
		return parseNumber(s, pi, opts)
	case s[*pi] == '"':
		return parseString(s, pi, opts)
	}
	return ir.Handle{}, errAt(s, *pi, opts)
}

// parseNumber scans digit+ ('.' digit+)?. The decimal point only selects
// the float storage path; either way the leaf keeps text plus the Raw
// format, not a numeric type.
func parseNumber(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	start := *pi
	dots := 0
	for *pi < len(s) && (isDigit(s[*pi]) || s[*pi] == '.') {
		if s[*pi] == '.' {
			dots++
		}
		*pi++
	}
	text := string(s[start:*pi])
	if dots > 1 || text[len(text)-1] == '.' {
		return ir.Handle{}, errAt(s, start, opts)
	}
	if dots == 1 {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ir.Handle{}, errAt(s, start, opts)
		}
		return ir.NewHandle(ir.FromFloat(f)), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// digit runs beyond the int64 range stay numeric on the float path
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return ir.Handle{}, errAt(s, start, opts)
		}
		return ir.NewHandle(ir.FromFloat(f)), nil
	}
	return ir.NewHandle(ir.FromInt(i)), nil
}

func parseString(s []byte, pi *int, opts *parseOpts) (ir.Handle, error) {
	*pi++ // consume opening quote
	start := *pi
	for {
		if *pi >= len(s) {
			return ir.Handle{}, errAt(s, *pi, opts)
		}
		if s[*pi] == '"' {
			break
		}
		*pi++
	}
	text := string(s[start:*pi])
	*pi++ // consume closing quote
	return ir.NewHandle(ir.FromString(text)), nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func errAt(s []byte, off int, opts *parseOpts) error {
	if off >= len(s) {
		return fmt.Errorf("%w: %s: unexpected end of input", ErrMalformed, opts.name())
	}
	return fmt.Errorf("%w: %s: unexpected %q at offset %d",
		ErrMalformed, opts.name(), s[off], off)
}
