package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// newTitleCaser returns a caser that applies Unicode title casing without
// lowering the rest of the word. Casers are stateful, so each call gets its own.
func newTitleCaser() cases.Caser {
	return cases.Title(language.Und, cases.NoLower)
}

// UpperFirst upper-cases the first rune of s.
// Example: "remote" -> "Remote", "über" -> "Über", "_x" -> "_x"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return newTitleCaser().String(string(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// Sanitize replaces every rune that cannot appear in an identifier with an
// underscore. Letters, digits and underscores are kept; case is preserved.
// Example: "set-time" -> "set_time", "cid.base" -> "cid_base"
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization
// of the next letter.
// Example: "kubo_rpc" -> "KuboRpc"
// Example: "com.example.ipfs" -> "ComExampleIpfs"
func ToPascalCase(s string) string {
	caser := newTitleCaser()
	var b strings.Builder
	b.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			b.WriteString(caser.String(string(r)))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with underscore and lowercased; a run of
// uppercase letters is kept together.
// Example: "Client" -> "client"
// Example: "IPFSClient" -> "ipfs_client"
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/' || r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
