package generator

import (
	"errors"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/testutil"
	"github.com/erraggy/mdbind/parser"
)

func TestNew(t *testing.T) {
	g := New()

	require.NotNil(t, g)
	assert.Equal(t, TargetGo, g.Target)
	assert.Equal(t, "api", g.PackageName)
	assert.Equal(t, DefaultBaseURL, g.BaseURL)
	assert.True(t, g.IncludeInfo)
	assert.False(t, g.StrictMode)
}

func TestGenerateWithOptions_RequiresInputSource(t *testing.T) {
	_, err := GenerateWithOptions(WithPackageName("test"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify an input source")
}

func TestGenerateWithOptions_OnlyOneInputSource(t *testing.T) {
	_, err := GenerateWithOptions(
		WithFilePath("api.md"),
		WithParsed(parser.ParseResult{}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify exactly one input source")
}

func TestWithPackageName_Empty(t *testing.T) {
	_, err := GenerateWithOptions(WithFilePath("api.md"), WithPackageName(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package name cannot be empty")
}

func TestWithTarget_Invalid(t *testing.T) {
	_, err := GenerateWithOptions(WithFilePath("api.md"), WithTarget(Target(7)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported target")
}

func TestGenerate_GoTarget(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(*mustParse(t, testutil.SampleDocument())),
		WithPackageName("kubo"),
	)
	require.NoError(t, err)
	require.True(t, result.Success)

	require.Len(t, result.Files, 1)
	assert.Equal(t, "client.go", result.Files[0].Name)
	assert.Equal(t, string(result.Files[0].Content), result.Output)
	assert.Len(t, result.Bindings, 8)
	assert.Equal(t, "Client", result.TypeName)

	out := result.Output
	assert.True(t, strings.HasPrefix(out, "// Code generated by mdbind from ParseBytes.md. DO NOT EDIT."))
	assert.Contains(t, out, "package kubo")
	assert.Contains(t, out, "func (c *Client) BitswapLedger(ctx context.Context, arg0 string) (map[string]any, error) {")
	assert.Contains(t, out, "func (c *Client) BitswapReprovide(ctx context.Context) (io.ReadCloser, error) {")
	assert.Contains(t, out, "func (c *Client) FilesCp(ctx context.Context, arg0 string, arg1 string, parents2 *bool) (io.ReadCloser, error) {")
	assert.Contains(t, out, "func (c *Client) FilesRead(ctx context.Context, arg0 string, offset1 *int64, count2 *int64) (io.ReadCloser, error) {")
	assert.Contains(t, out, "func (c *Client) DiagCmdsSet_time(ctx context.Context, arg0 string, limit1 *int64) (io.ReadCloser, error) {")
	assert.Contains(t, out, "func (c *Client) SwarmPeeringAdd(ctx context.Context, arg0 []any) (map[string]any, error) {")
	assert.Contains(t, out, `query.Add("arg", arg1)`)
	assert.Contains(t, out, `err := c.callJSON(ctx, "/api/v0/pin/remote/add", query, &out)`)
	assert.Contains(t, out, "if background3 != nil {\n\t\tquery.Add(\"background\", strconv.FormatBool(*background3))\n\t}")
	assert.Contains(t, out, "// @param arg0 The PeerID (B58) of the ledger to inspect. Required: **yes**.")
	assert.NotContains(t, out, "FilesWrite", "request-body endpoints are never bound")

	// Bindings appear in catalog order.
	assert.Less(t, strings.Index(out, ") BitswapLedger("), strings.Index(out, ") BitswapReprovide("))
	assert.Less(t, strings.Index(out, ") FilesRead("), strings.Index(out, ") PinRemoteAdd("))

	// Rejections travel with the result.
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "/api/v0/files/write", result.Issues[0].Path)
	assert.Equal(t, 1, result.InfoCount)
}

func TestGenerate_GoOutputParses(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(*mustParse(t, testutil.SampleDocument())))
	require.NoError(t, err)
	assert.False(t, result.HasWarnings(), "formatting must succeed: %v", result.Issues)

	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, "client.go", result.Output, goparser.ParseComments)
	require.NoError(t, err, "generated Go must be syntactically valid")
	assert.Equal(t, "api", file.Name.Name)

	methods := map[string]bool{}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv != nil && fn.Name.IsExported() {
			methods[fn.Name.Name] = true
		}
	}
	for _, name := range []string{
		"BitswapLedger", "BitswapReprovide", "BitswapStat", "FilesCp",
		"FilesRead", "PinRemoteAdd", "DiagCmdsSet_time", "SwarmPeeringAdd",
	} {
		assert.True(t, methods[name], "missing method %s", name)
	}

	imports := map[string]bool{}
	for _, imp := range file.Imports {
		imports[imp.Path.Value] = true
	}
	assert.True(t, imports[`"strconv"`], "strconv is used by int64 and bool parameters")
}

func TestGenerate_GoUnusedImportsRemoved(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(*mustParse(t, testutil.BitswapReprovideBlock)))
	require.NoError(t, err)

	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, "client.go", result.Output, goparser.ImportsOnly)
	require.NoError(t, err)
	for _, imp := range file.Imports {
		assert.NotEqual(t, `"strconv"`, imp.Path.Value)
	}
}

func TestGenerate_GoBaseURLAndTypeName(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(*mustParse(t, testutil.BitswapLedgerBlock)),
		WithInterfaceName("Kubo"),
		WithBaseURL("http://ipfs.local:5001"),
	)
	require.NoError(t, err)
	assert.Equal(t, "kubo.go", result.Files[0].Name)
	assert.Contains(t, result.Output, `const DefaultBaseURL = "http://ipfs.local:5001"`)
	assert.Contains(t, result.Output, "func NewKubo(baseURL string) *Kubo {")
	assert.Contains(t, result.Output, "func (c *Kubo) BitswapLedger(")
}

func TestGenerate_KotlinTarget(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(*mustParse(t, testutil.BitswapLedgerBlock)),
		WithTarget(TargetKotlin),
	)
	require.NoError(t, err)

	want := `// Generated by mdbind from ParseBytes.md. Do not edit.

package api

import okhttp3.ResponseBody
import org.json.JSONObject
import retrofit2.http.POST
import retrofit2.http.Query

interface IPFS {
    /**
     * Show the current ledger for a peer.
     * @param arg0 The PeerID (B58) of the ledger to inspect. Required: **yes**.
     * @return On success, the call to this endpoint will return with 200 and the following body:<br><pre>
     * {
     *   "Exchanged": "<uint64>",
     *   "Peer": "<string>",
     *   "Recv": "<uint64>",
     *   "Sent": "<uint64>",
     *   "Value": "<float64>"
     * }
     * </pre>
     */
    @POST("/api/v0/bitswap/ledger")
    suspend fun bitswapLedger(@Query("arg") arg0: String): JSONObject
}
`
	assert.Equal(t, want, result.Output)
	assert.Equal(t, "IPFS.kt", result.Files[0].Name)
}

func TestGenerate_KotlinBindingsSeparatedByBlankLine(t *testing.T) {
	result, err := GenerateWithOptions(
		WithParsed(*mustParse(t, testutil.BitswapReprovideBlock+"\n"+testutil.FilesCpBlock)),
		WithTarget(TargetKotlin),
		WithPackageName("io.ipfs.api"),
	)
	require.NoError(t, err)

	out := result.Output
	assert.Contains(t, out, "package io.ipfs.api\n")
	assert.Contains(t, out, "    suspend fun bitswapReprovide(): ResponseBody\n\n    /**\n")
	assert.Contains(t, out,
		`    suspend fun filesCp(@Query("arg") arg0: String, @Query("arg") arg1: String, @Query("parents") parents2: Boolean? = null): ResponseBody`+"\n}\n")
	assert.NotContains(t, out, "\n\n\n")
}

func TestGenerate_UnsupportedArgumentTypeAborts(t *testing.T) {
	doc := testutil.BitswapLedgerBlock + "\n" + testutil.FloatArgumentBlock
	result, err := GenerateWithOptions(WithParsed(*mustParse(t, doc)))

	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrUnsupportedArgumentType))
	assert.Contains(t, err.Error(), "float64")

	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Bindings)
	assert.Empty(t, result.Output)
	assert.Equal(t, 1, result.CriticalCount)
	assert.True(t, result.HasCriticalIssues())
}

func TestGenerate_StrictMode(t *testing.T) {
	t.Run("request body exclusions pass", func(t *testing.T) {
		pr := mustParse(t, testutil.BitswapLedgerBlock+"\n"+testutil.FilesWriteBlock)
		result, err := GenerateWithOptions(WithParsed(*pr), WithStrictMode(true))
		require.NoError(t, err)
		assert.Len(t, result.Bindings, 1)
	})

	t.Run("malformed blocks fail", func(t *testing.T) {
		pr := mustParse(t, testutil.BitswapLedgerBlock+"\n"+testutil.UnparsableResponseBlock)
		result, err := GenerateWithOptions(WithParsed(*pr), WithStrictMode(true))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strict mode")
		assert.True(t, errors.Is(err, binderrors.ErrUnparsableResponse))
		require.NotNil(t, result)
		assert.Empty(t, result.Files)
	})

	t.Run("non-strict keeps going", func(t *testing.T) {
		pr := mustParse(t, testutil.BitswapLedgerBlock+"\n"+testutil.UnparsableResponseBlock)
		result, err := GenerateWithOptions(WithParsed(*pr))
		require.NoError(t, err)
		assert.Len(t, result.Bindings, 1)
		assert.Equal(t, 1, result.WarningCount)
	})
}

func TestGenerate_WithoutInfo(t *testing.T) {
	pr := mustParse(t, testutil.BitswapLedgerBlock+"\n"+testutil.FilesWriteBlock)
	result, err := GenerateWithOptions(WithParsed(*pr), WithIncludeInfo(false))
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.InfoCount)
}

func TestGenerate_InvalidNames(t *testing.T) {
	pr := *mustParse(t, testutil.BitswapLedgerBlock)

	_, err := GenerateWithOptions(WithParsed(pr), WithPackageName("io.ipfs"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Go package name")

	_, err = GenerateWithOptions(WithParsed(pr), WithInterfaceName("not valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type name")
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	result, err := New().GenerateParsed(parser.ParseResult{SourcePath: "empty.md"})
	require.NoError(t, err)
	assert.Empty(t, result.Bindings)
	require.Len(t, result.Files, 1)
	assert.Contains(t, result.Output, "type Client struct")
}

func TestGeneratorStruct_Generate(t *testing.T) {
	g := New()
	g.Target = TargetKotlin
	result, err := g.Generate("../testdata/ipfs-api.md")
	require.NoError(t, err)
	assert.Len(t, result.Bindings, 4)
	assert.Equal(t, "../testdata/ipfs-api.md", result.ParseResult.SourcePath)
	assert.Contains(t, result.Output, "suspend fun pinRemoteAdd(")
}

func TestGenerateFileNotFound(t *testing.T) {
	_, err := GenerateWithOptions(WithFilePath("../testdata/missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")
	assert.True(t, errors.Is(err, binderrors.ErrSource))
}

func TestGenerate_UnsupportedTypeFixture(t *testing.T) {
	_, err := GenerateWithOptions(WithFilePath("../testdata/unsupported-type.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrUnsupportedArgumentType))
}

func TestGenerate_Deterministic(t *testing.T) {
	pr := *mustParse(t, testutil.SampleDocument())
	first, err := GenerateWithOptions(WithParsed(pr))
	require.NoError(t, err)
	second, err := GenerateWithOptions(WithParsed(pr))
	require.NoError(t, err)
	assert.Equal(t, first.Output, second.Output)
}

func TestGenerate_Concurrent(t *testing.T) {
	pr := *mustParse(t, testutil.SampleDocument())
	want, err := GenerateWithOptions(WithParsed(pr), WithTarget(TargetKotlin))
	require.NoError(t, err)

	var wg sync.WaitGroup
	outputs := make([]string, 8)
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := GenerateWithOptions(WithParsed(pr), WithTarget(TargetKotlin))
			if err == nil {
				outputs[i] = res.Output
			}
		}(i)
	}
	wg.Wait()
	for _, out := range outputs {
		assert.Equal(t, want.Output, out)
	}
}

func TestGenerateResult_WriteFiles(t *testing.T) {
	result, err := GenerateWithOptions(WithParsed(*mustParse(t, testutil.BitswapLedgerBlock)))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "client.go"))
	require.NoError(t, err)
	assert.Equal(t, result.Output, string(data))
}

func TestGenerateResult_WriteFiles_RejectsPaths(t *testing.T) {
	result := &GenerateResult{Files: []GeneratedFile{{Name: "../escape.go", Content: []byte("x")}}}
	err := result.WriteFiles(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain path separators")
}

func TestGenerateResult_GetFile(t *testing.T) {
	result := &GenerateResult{Files: []GeneratedFile{{Name: "client.go"}}}
	assert.NotNil(t, result.GetFile("client.go"))
	assert.Nil(t, result.GetFile("IPFS.kt"))
}

func TestGeneratedFile_WriteFile(t *testing.T) {
	f := &GeneratedFile{Name: "IPFS.kt", Content: []byte("interface IPFS {\n}\n")}
	path := filepath.Join(t.TempDir(), "nested", "IPFS.kt")
	require.NoError(t, f.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Content, data)
}
