// This file renders bindings as methods of a Go client type.

package generator

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/erraggy/mdbind/internal/naming"
)

// DefaultBaseURL is the server address baked into generated Go clients when
// none is configured. It is the default RPC listen address of an IPFS node.
const DefaultBaseURL = "http://127.0.0.1:5001"

type goEmitter struct{}

func (goEmitter) defaultTypeName() string { return "Client" }

func (goEmitter) fileName(typeName string) string {
	return naming.ToSnakeCase(typeName) + ".go"
}

func (goEmitter) validatePackage(name string) error {
	if !token.IsIdentifier(name) || name == "_" {
		return fmt.Errorf("invalid Go package name %q", name)
	}
	return nil
}

func (goEmitter) render(data *fileData) ([]byte, error) {
	return executeTemplate("go_client.go.tmpl", data)
}

// goReturnType returns the Go result type for a binding. A JSON example
// whose top level is an array decodes into []any; any other JSON decodes
// into an object map.
func goReturnType(b Binding) string {
	switch {
	case b.Return == ReturnByteStream:
		return "io.ReadCloser"
	case jsonArrayExample(b.Example):
		return "[]any"
	default:
		return "map[string]any"
	}
}

func jsonArrayExample(example string) bool {
	return strings.HasPrefix(strings.TrimSpace(example), "[")
}

// goParamType returns the Go type of a parameter. Optional scalars are
// pointers so that nil means "not sent" and every value, including false
// and 0, can still be sent.
func goParamType(p Param) string {
	if !p.Required && p.Kind != KindArray {
		return "*" + goType(p.Kind)
	}
	return goType(p.Kind)
}

// goParams renders the parameter list following the leading ctx parameter.
func goParams(b Binding) string {
	var sb strings.Builder
	for _, p := range b.Params {
		fmt.Fprintf(&sb, ", %s %s", p.LocalName, goParamType(p))
	}
	return sb.String()
}

// goQueryStatement renders the statement that adds one parameter to the
// query. Optional scalars are sent when non-nil; arrays add one value per
// element.
func goQueryStatement(p Param) string {
	key := fmt.Sprintf("%q", p.WireKey)
	if p.Kind == KindArray {
		return fmt.Sprintf("for _, v := range %s {\nquery.Add(%s, fmt.Sprint(v))\n}", p.LocalName, key)
	}

	v := p.LocalName
	if !p.Required {
		v = "*" + p.LocalName
	}
	var value string
	switch p.Kind {
	case KindBool:
		value = fmt.Sprintf("strconv.FormatBool(%s)", v)
	case KindInt:
		value = fmt.Sprintf("strconv.FormatInt(int64(%s), 10)", v)
	case KindInt64:
		value = fmt.Sprintf("strconv.FormatInt(%s, 10)", v)
	default:
		value = v
	}

	stmt := fmt.Sprintf("query.Add(%s, %s)", key, value)
	if p.Required {
		return stmt
	}
	return fmt.Sprintf("if %s != nil {\n%s\n}", p.LocalName, stmt)
}

// goDoc renders the doc comment of a binding method: the description headed
// by the method name, one @param line per parameter, and the @return block
// with the example as an indented code block.
func goDoc(b Binding) string {
	method := goMethodName(b.Identifier)
	var sb strings.Builder

	desc := strings.TrimSpace(b.Description)
	if desc == "" {
		desc = "calls " + b.Path + "."
	}
	fmt.Fprintf(&sb, "// %s %s\n", method, desc)

	if len(b.Params) > 0 {
		sb.WriteString("//\n")
		for _, p := range b.Params {
			fmt.Fprintf(&sb, "// @param %s %s\n", p.LocalName, p.Description)
		}
	}

	ret := docLines(b.ResponseDescription)
	example := docLines(b.Example)
	if len(ret) == 0 && len(example) == 0 {
		return sb.String()
	}

	sb.WriteString("//\n")
	if len(ret) == 0 {
		sb.WriteString("// @return\n")
	}
	for i, line := range ret {
		if i == 0 {
			fmt.Fprintf(&sb, "// @return %s\n", strings.TrimSpace(line))
			continue
		}
		writeGoCommentLine(&sb, strings.TrimSpace(line), "")
	}
	if len(example) > 0 {
		sb.WriteString("//\n")
		for _, line := range example {
			writeGoCommentLine(&sb, strings.TrimRight(line, " \t"), "\t")
		}
	}
	return sb.String()
}

func writeGoCommentLine(sb *strings.Builder, line, indent string) {
	if line == "" {
		sb.WriteString("//\n")
		return
	}
	sb.WriteString("// ")
	sb.WriteString(indent)
	sb.WriteString(line)
	sb.WriteString("\n")
}
