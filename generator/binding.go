package generator

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/parser"
)

// ReturnKind is the language-neutral result type of a binding.
type ReturnKind int

const (
	// ReturnJSONObject is a generic decoded JSON value, used for STRUCTURED responses.
	ReturnJSONObject ReturnKind = iota
	// ReturnByteStream is an opaque response body, used for RAW responses.
	ReturnByteStream
)

// String returns the return kind name.
func (r ReturnKind) String() string {
	switch r {
	case ReturnJSONObject:
		return "json-object"
	case ReturnByteStream:
		return "byte-stream"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r ReturnKind) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Param is one typed, disambiguated binding parameter.
type Param struct {
	// LocalName is the parameter name in the signature, unique within the binding
	LocalName string `json:"local_name"`
	// WireKey is the query key sent with the request
	WireKey string `json:"wire_key"`
	// Kind is the mapped type
	Kind Kind `json:"-"`
	// DocType is the type token as documented
	DocType string `json:"doc_type"`
	// Description is the argument description, used for @param
	Description string `json:"description,omitempty"`
	// Required is true when the argument is marked required
	Required bool `json:"required"`
}

// Binding is the target-independent form of one generated call signature.
type Binding struct {
	// Path is the endpoint route
	Path string `json:"path"`
	// Identifier is the canonical camel-style name derived from Path
	Identifier string `json:"identifier"`
	// Description is the endpoint description
	Description string `json:"description,omitempty"`
	// Params are in call order
	Params []Param `json:"params,omitempty"`
	// Return selects the result type
	Return ReturnKind `json:"return"`
	// ResponseDescription is the prose of the documented response
	ResponseDescription string `json:"response_description,omitempty"`
	// Example is the documented response example, reproduced verbatim in docs
	Example string `json:"example,omitempty"`
}

// newBinding builds the binding for one endpoint. Every argument type is
// checked; all unmapped types are reported together.
func newBinding(ep parser.Endpoint, identifier string) (Binding, error) {
	b := Binding{
		Path:                ep.Path,
		Identifier:          identifier,
		Description:         ep.Description,
		ResponseDescription: ep.Response.Description,
		Example:             ep.Response.Example,
	}
	if ep.Response.ContentClass == parser.ContentRaw {
		b.Return = ReturnByteStream
	}

	var errs *multierror.Error
	for i, arg := range ep.Arguments {
		kind, err := mapArgumentType(ep.Path, arg.Name, i, arg.DocType)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		b.Params = append(b.Params, Param{
			LocalName:   LocalParamName(arg.Name, i),
			WireKey:     arg.Name,
			Kind:        kind,
			DocType:     arg.DocType,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	return b, errs.ErrorOrNil()
}

// buildBindings derives the bindings for the catalog in order. An unmapped
// argument type anywhere fails the whole set; identifiers that are empty are
// skipped and identifiers that repeat in the emitted form get a numeric
// suffix, both reported as issues.
func (g *Generator) buildBindings(catalog *parser.Catalog, result *GenerateResult) ([]Binding, error) {
	var typeErrs *multierror.Error
	seen := make(map[string]int)
	bindings := make([]Binding, 0, catalog.Len())

	for _, ep := range catalog.Endpoints() {
		identifier := DeriveIdentifier(ep.Path)
		if identifier == "" {
			g.addIssue(result, GenerateIssue{
				Path:     ep.Path,
				Line:     ep.Line,
				Message:  "path has no segments after the route prefix; no binding emitted",
				Severity: SeverityWarning,
				Field:    "identifier",
			})
			continue
		}

		seen[g.identifierKey(identifier)]++
		if n := seen[g.identifierKey(identifier)]; n > 1 {
			renamed := identifier + strconv.Itoa(n)
			for seen[g.identifierKey(renamed)] > 0 {
				n++
				renamed = identifier + strconv.Itoa(n)
			}
			seen[g.identifierKey(renamed)]++
			g.addIssue(result, GenerateIssue{
				Path:     ep.Path,
				Line:     ep.Line,
				Message:  fmt.Sprintf("identifier %q already used by an earlier endpoint; renamed to %q", identifier, renamed),
				Severity: SeverityWarning,
				Field:    "identifier",
			})
			identifier = renamed
		}

		b, err := newBinding(ep, identifier)
		if err != nil {
			typeErrs = multierror.Append(typeErrs, err)
			continue
		}
		bindings = append(bindings, b)
	}

	if err := typeErrs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return bindings, nil
}

// identifierKey is the name an identifier is emitted as, which is what must
// be unique. Go exports methods by upper-casing the first rune, so "Foo" and
// "foo" collide there but not in Kotlin.
func (g *Generator) identifierKey(identifier string) string {
	if g.Target == TargetGo {
		return goMethodName(identifier)
	}
	return identifier
}

// typeErrorIssues converts every TypeError in err to a critical issue.
func typeErrorIssues(err error) []GenerateIssue {
	var merr *multierror.Error
	list := []error{err}
	if errors.As(err, &merr) {
		list = merr.WrappedErrors()
	}

	var out []GenerateIssue
	for _, e := range list {
		var typeErr *binderrors.TypeError
		if !errors.As(e, &typeErr) {
			continue
		}
		out = append(out, GenerateIssue{
			Path:     typeErr.Path,
			Message:  typeErr.Error(),
			Severity: SeverityCritical,
			Field:    typeErr.Argument,
		})
	}
	return out
}
