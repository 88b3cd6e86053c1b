package generator

import (
	"fmt"
	"go/token"
	"strings"
)

// Target is the calling convention bindings are emitted for.
type Target int

const (
	// TargetGo emits a Go client type with one method per endpoint.
	TargetGo Target = iota
	// TargetKotlin emits a Retrofit interface with one suspend function per endpoint.
	TargetKotlin
)

// String returns the target name as accepted by ParseTarget.
func (t Target) String() string {
	switch t {
	case TargetGo:
		return "go"
	case TargetKotlin:
		return "kotlin"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTarget converts a target name ("go", "kotlin") to a Target.
// Matching is case-insensitive; "kt" is accepted for Kotlin.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "go", "golang":
		return TargetGo, nil
	case "kotlin", "kt":
		return TargetKotlin, nil
	default:
		return 0, fmt.Errorf("unknown target %q (supported: go, kotlin)", name)
	}
}

// fileData is the input of a target template.
type fileData struct {
	// Source is the document the bindings were generated from
	Source string
	// PackageName is the package clause of the generated file
	PackageName string
	// TypeName is the client struct or interface name
	TypeName string
	// BaseURL is the default server address baked into Go clients
	BaseURL string
	// Bindings are in catalog order
	Bindings []Binding
}

// emitter renders bindings for one target.
type emitter interface {
	// defaultTypeName is used when no interface name is configured
	defaultTypeName() string
	// fileName returns the output file name for the given type name
	fileName(typeName string) string
	// validatePackage checks the package clause for the target
	validatePackage(name string) error
	// render produces the complete output file
	render(data *fileData) ([]byte, error)
}

func emitterFor(t Target) (emitter, error) {
	switch t {
	case TargetGo:
		return goEmitter{}, nil
	case TargetKotlin:
		return kotlinEmitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported target %d", int(t))
	}
}

// validateTypeName checks that name can be used as a type name in both targets.
func validateTypeName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("invalid type name %q: must be an identifier", name)
	}
	return nil
}

// docLines splits text into lines with surrounding blank lines removed.
// Interior blank lines are kept.
func docLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
