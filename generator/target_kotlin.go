// This file renders bindings as a Retrofit interface in Kotlin.

package generator

import (
	"fmt"
	"go/token"
	"strings"
)

type kotlinEmitter struct{}

func (kotlinEmitter) defaultTypeName() string { return "IPFS" }

func (kotlinEmitter) fileName(typeName string) string {
	return typeName + ".kt"
}

// validatePackage accepts dotted package names whose parts are identifiers.
func (kotlinEmitter) validatePackage(name string) error {
	for _, part := range strings.Split(name, ".") {
		if !token.IsIdentifier(part) || kotlinHardKeywords[part] {
			return fmt.Errorf("invalid Kotlin package name %q", name)
		}
	}
	return nil
}

func (kotlinEmitter) render(data *fileData) ([]byte, error) {
	return executeTemplate("kotlin_interface.kt.tmpl", data)
}

// kotlinReturnType returns the Retrofit result type for a binding.
func kotlinReturnType(b Binding) string {
	if b.Return == ReturnByteStream {
		return "ResponseBody"
	}
	return "JSONObject"
}

// kotlinString renders s as a Kotlin string literal.
func kotlinString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

// kotlinParams renders the parameter list. Optional parameters are nullable
// and default to null, which Retrofit leaves out of the query.
func kotlinParams(b Binding) string {
	parts := make([]string, 0, len(b.Params))
	for _, p := range b.Params {
		typ := kotlinType(p.Kind)
		if p.Required {
			parts = append(parts, fmt.Sprintf("@Query(%s) %s: %s", kotlinString(p.WireKey), p.LocalName, typ))
			continue
		}
		parts = append(parts, fmt.Sprintf("@Query(%s) %s: %s? = null", kotlinString(p.WireKey), p.LocalName, typ))
	}
	return strings.Join(parts, ", ")
}

// kdocText keeps free text from closing the comment early.
func kdocText(s string) string {
	return strings.ReplaceAll(s, "*/", "*&#47;")
}

// kotlinDoc renders the KDoc block of a binding, indented for an interface
// member: description, @param lines, and the @return block with the example
// reproduced line by line inside <pre>.
func kotlinDoc(b Binding) string {
	const indent = "    "
	var sb strings.Builder

	sb.WriteString(indent + "/**\n")
	if desc := strings.TrimSpace(b.Description); desc != "" {
		sb.WriteString(indent + " * " + kdocText(desc) + "\n")
	}
	for _, p := range b.Params {
		fmt.Fprintf(&sb, "%s * @param %s %s\n", indent, p.LocalName, kdocText(p.Description))
	}

	ret := docLines(b.ResponseDescription)
	first := ""
	if len(ret) > 0 {
		first = " " + strings.TrimSpace(ret[0])
		ret = ret[1:]
	}
	sb.WriteString(indent + " * @return" + kdocText(first))
	for _, line := range ret {
		sb.WriteString("\n" + strings.TrimRight(indent+" * "+kdocText(strings.TrimSpace(line)), " "))
	}
	sb.WriteString("<br><pre>\n")
	for _, line := range docLines(b.Example) {
		sb.WriteString(strings.TrimRight(indent+" * "+kdocText(line), " ") + "\n")
	}
	sb.WriteString(indent + " * </pre>\n")
	sb.WriteString(indent + " */")
	return sb.String()
}
