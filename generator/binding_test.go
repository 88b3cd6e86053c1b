package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/testutil"
	"github.com/erraggy/mdbind/parser"
)

func mustParse(t *testing.T, doc string) *parser.ParseResult {
	t.Helper()
	result, err := parser.New().ParseBytes([]byte(doc))
	require.NoError(t, err)
	return result
}

func TestNewBinding_Ledger(t *testing.T) {
	pr := mustParse(t, testutil.BitswapLedgerBlock)
	ep, ok := pr.Catalog.Get("/api/v0/bitswap/ledger")
	require.True(t, ok)

	b, err := newBinding(ep, DeriveIdentifier(ep.Path))
	require.NoError(t, err)

	assert.Equal(t, "bitswapLedger", b.Identifier)
	assert.Equal(t, ReturnJSONObject, b.Return)
	require.Len(t, b.Params, 1)
	assert.Equal(t, Param{
		LocalName:   "arg0",
		WireKey:     "arg",
		Kind:        KindString,
		DocType:     "string",
		Description: "The PeerID (B58) of the ledger to inspect. Required: **yes**.",
		Required:    true,
	}, b.Params[0])
}

func TestNewBinding_RawAndRepeatedKeys(t *testing.T) {
	pr := mustParse(t, testutil.FilesCpBlock)
	ep, _ := pr.Catalog.Get("/api/v0/files/cp")

	b, err := newBinding(ep, "filesCp")
	require.NoError(t, err)
	assert.Equal(t, ReturnByteStream, b.Return)

	require.Len(t, b.Params, 3)
	assert.Equal(t, []string{"arg0", "arg1", "parents2"},
		[]string{b.Params[0].LocalName, b.Params[1].LocalName, b.Params[2].LocalName})
	assert.Equal(t, "arg", b.Params[0].WireKey)
	assert.Equal(t, "arg", b.Params[1].WireKey)
}

func TestNewBinding_ReportsEveryUnsupportedType(t *testing.T) {
	ep := parser.Endpoint{
		Path: "/api/v0/stats/mixed",
		Arguments: []parser.Argument{
			{Name: "a", DocType: "float64"},
			{Name: "b", DocType: "string"},
			{Name: "c", DocType: "map"},
		},
	}
	_, err := newBinding(ep, "statsMixed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrUnsupportedArgumentType))

	issues := typeErrorIssues(err)
	require.Len(t, issues, 2)
	assert.Equal(t, "a", issues[0].Field)
	assert.Equal(t, "c", issues[1].Field)
	assert.Equal(t, SeverityCritical, issues[0].Severity)
}

func TestBuildBindings_DuplicateIdentifiers(t *testing.T) {
	catalog := mustParse(t, testutil.Markdown(`## /api/v0/name-sys

### Response

This endpoint returns a ~text/plain~ response body.

---

## /api/v0/name_sys

### Response

This endpoint returns a ~text/plain~ response body.

---
`)).Catalog

	g := New()
	result := &GenerateResult{}
	bindings, err := g.buildBindings(catalog, result)
	require.NoError(t, err)

	require.Len(t, bindings, 2)
	assert.Equal(t, "name_sys", bindings[0].Identifier)
	assert.Equal(t, "name_sys2", bindings[1].Identifier)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, "/api/v0/name_sys", result.Issues[0].Path)
}

var caseOnlyPaths = testutil.Markdown(`## /api/v0/Foo

### Response

This endpoint returns a ~text/plain~ response body.

---

## /api/v0/foo

### Response

This endpoint returns a ~text/plain~ response body.

---

## /api/v0/foo2

### Response

This endpoint returns a ~text/plain~ response body.

---
`)

func TestBuildBindings_CaseOnlyCollisionGo(t *testing.T) {
	catalog := mustParse(t, caseOnlyPaths).Catalog

	result := &GenerateResult{}
	bindings, err := New().buildBindings(catalog, result)
	require.NoError(t, err)

	require.Len(t, bindings, 3)
	assert.Equal(t, []string{"Foo", "foo2", "foo22"},
		[]string{bindings[0].Identifier, bindings[1].Identifier, bindings[2].Identifier})

	methods := make(map[string]bool)
	for _, b := range bindings {
		name := goMethodName(b.Identifier)
		assert.False(t, methods[name], "duplicate Go method %q", name)
		methods[name] = true
	}

	require.Len(t, result.Issues, 2)
	assert.Equal(t, "/api/v0/foo", result.Issues[0].Path)
	assert.Equal(t, "/api/v0/foo2", result.Issues[1].Path)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
}

func TestBuildBindings_CaseOnlyDistinctInKotlin(t *testing.T) {
	catalog := mustParse(t, caseOnlyPaths).Catalog

	g := New()
	g.Target = TargetKotlin
	result := &GenerateResult{}
	bindings, err := g.buildBindings(catalog, result)
	require.NoError(t, err)

	require.Len(t, bindings, 3)
	assert.Equal(t, []string{"Foo", "foo", "foo2"},
		[]string{bindings[0].Identifier, bindings[1].Identifier, bindings[2].Identifier})
	assert.Empty(t, result.Issues)
}

func TestBuildBindings_EmptyIdentifierSkipped(t *testing.T) {
	catalog := mustParse(t, testutil.Markdown(`## /api/v0/

### Response

This endpoint returns a ~text/plain~ response body.

---
`)).Catalog

	result := &GenerateResult{}
	bindings, err := New().buildBindings(catalog, result)
	require.NoError(t, err)
	assert.Empty(t, bindings)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "identifier", result.Issues[0].Field)
}

func TestReturnKind_String(t *testing.T) {
	assert.Equal(t, "json-object", ReturnJSONObject.String())
	assert.Equal(t, "byte-stream", ReturnByteStream.String())
	assert.Equal(t, "unknown", ReturnKind(7).String())
	text, err := ReturnByteStream.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "byte-stream", string(text))
}
