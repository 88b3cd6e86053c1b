// This file maps documented argument type tokens to language-neutral kinds
// and from kinds to the type names of each target.

package generator

import (
	"strings"

	"github.com/erraggy/mdbind/binderrors"
)

// Kind is the language-neutral type of a binding parameter.
type Kind int

const (
	// KindString is a text value.
	KindString Kind = iota
	// KindBool is a boolean flag.
	KindBool
	// KindInt is a platform-sized integer.
	KindInt
	// KindInt64 is a 64-bit integer (documented as int64 or uint64).
	KindInt64
	// KindArray is a dynamic array of values.
	KindArray
)

// String returns the documented token the kind is named after.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// docTypeKinds is the fixed lookup table for documented type tokens.
var docTypeKinds = map[string]Kind{
	"string": KindString,
	"bool":   KindBool,
	"int":    KindInt,
	"int64":  KindInt64,
	"uint64": KindInt64,
	"array":  KindArray,
}

// LookupKind maps a documented type token to its kind. Angle brackets around
// the token ("<uint64>") are ignored. ok is false for tokens outside the table.
func LookupKind(docType string) (kind Kind, ok bool) {
	token := strings.TrimSuffix(strings.TrimPrefix(docType, "<"), ">")
	kind, ok = docTypeKinds[token]
	return kind, ok
}

// mapArgumentType resolves one argument's kind or returns a TypeError.
func mapArgumentType(path, name string, index int, docType string) (Kind, error) {
	kind, ok := LookupKind(docType)
	if !ok {
		return 0, &binderrors.TypeError{Path: path, Argument: name, Index: index, DocType: docType}
	}
	return kind, nil
}

// goType returns the Go type for a kind.
func goType(k Kind) string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindArray:
		return "[]any"
	default:
		return "any"
	}
}

// kotlinType returns the Kotlin type for a kind.
func kotlinType(k Kind) string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Int"
	case KindInt64:
		return "Long"
	case KindArray:
		return "Array<*>"
	default:
		return "Any"
	}
}
