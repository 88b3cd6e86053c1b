// This file derives binding identifiers from endpoint paths and
// disambiguated local names from argument lists.

package generator

import (
	"strconv"
	"strings"

	"github.com/erraggy/mdbind/internal/naming"
)

// routePrefixSegments is the number of leading path segments ("", "api",
// "v0") that never contribute to an identifier.
const routePrefixSegments = 3

// DeriveIdentifier returns the canonical camel-style identifier for an
// endpoint path. The segments after "/api/v0" are joined: the first keeps its
// case, each later one has its first character upper-cased. Hyphens and other
// characters that cannot appear in an identifier become underscores first.
//
//	"/api/v0/pin/remote/add"      -> "pinRemoteAdd"
//	"/api/v0/diag/cmds/set-time"  -> "diagCmdsSet_time"
//
// The result is empty when the path has no segments past the prefix.
func DeriveIdentifier(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) <= routePrefixSegments {
		return ""
	}

	var b strings.Builder
	for i, seg := range segments[routePrefixSegments:] {
		seg = naming.Sanitize(seg)
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(naming.UpperFirst(seg))
	}
	return b.String()
}

// LocalParamName returns the local parameter name for the argument at index:
// the sanitized wire name followed by the index, so repeated wire keys stay
// distinct ("arg" at 0 and 1 -> "arg0", "arg1").
func LocalParamName(name string, index int) string {
	return naming.Sanitize(name) + strconv.Itoa(index)
}

// kotlinHardKeywords are the Kotlin keywords that cannot name a function
// without backtick quoting.
var kotlinHardKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// kotlinFunctionName quotes identifiers that collide with hard keywords.
func kotlinFunctionName(identifier string) string {
	if kotlinHardKeywords[identifier] {
		return "`" + identifier + "`"
	}
	return identifier
}

// goMethodName exports an identifier by upper-casing its first rune.
// Identifiers that still do not start with a letter get an "X" prefix.
func goMethodName(identifier string) string {
	name := naming.UpperFirst(identifier)
	if name == "" || !isLetterStart(name) {
		name = "X" + name
	}
	return name
}

func isLetterStart(s string) bool {
	c := s[0]
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= 0x80
}
