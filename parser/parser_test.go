package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/severity"
	"github.com/erraggy/mdbind/internal/testutil"
)

func TestParseBytes_SampleDocument(t *testing.T) {
	result, err := New().ParseBytes([]byte(testutil.SampleDocument()))
	require.NoError(t, err)

	assert.Equal(t, "ParseBytes.md", result.SourcePath)
	assert.Equal(t, []string{
		"/api/v0/bitswap/ledger",
		"/api/v0/bitswap/reprovide",
		"/api/v0/bitswap/stat",
		"/api/v0/files/cp",
		"/api/v0/files/read",
		"/api/v0/pin/remote/add",
		"/api/v0/diag/cmds/set-time",
		"/api/v0/swarm/peering/add",
	}, result.Catalog.Paths())

	require.Len(t, result.Rejections, 1)
	rej := result.Rejections[0]
	assert.Equal(t, "/api/v0/files/write", rej.Path)
	assert.Equal(t, ReasonUnsupportedRequestBody, rej.Reason)
	assert.Positive(t, rej.Line)

	assert.Equal(t, Stats{Blocks: 9, Endpoints: 8, Rejected: 1, Duplicates: 0, Arguments: 16}, result.Stats)
	assert.Equal(t, int64(len(testutil.SampleDocument())), result.SourceSize)
	assert.True(t, result.HasRejections())
}

func TestParse_FileFixture(t *testing.T) {
	result, err := New().Parse("../testdata/ipfs-api.md")
	require.NoError(t, err)

	assert.Equal(t, "../testdata/ipfs-api.md", result.SourcePath)
	assert.Equal(t, 4, result.Catalog.Len())
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, "/api/v0/files/write", result.Rejections[0].Path)

	ledger, ok := result.Catalog.Get("/api/v0/bitswap/ledger")
	require.True(t, ok)
	assert.Equal(t, 22, ledger.Line)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := New().Parse("../testdata/does-not-exist.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrSource))
	assert.Contains(t, err.Error(), "does-not-exist.md")
}

func TestParse_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(testutil.BitswapLedgerBlock))
	}))
	defer server.Close()

	result, err := New().Parse(server.URL + "/api.md")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/api.md", result.SourcePath)
	assert.Equal(t, 1, result.Catalog.Len())
}

func TestParse_URLStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New().Parse(server.URL)
	require.Error(t, err)

	var srcErr *binderrors.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, http.StatusNotFound, srcErr.StatusCode)
}

func TestParseReader(t *testing.T) {
	result, err := New().ParseReader(strings.NewReader(testutil.PinRemoteAddBlock))
	require.NoError(t, err)
	assert.Equal(t, "ParseReader.md", result.SourcePath)

	ep, ok := result.Catalog.Get("/api/v0/pin/remote/add")
	require.True(t, ok)
	assert.Len(t, ep.Arguments, 4)
	assert.Equal(t, 1, ep.RequiredArguments())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseReader_Error(t *testing.T) {
	_, err := New().ParseReader(failingReader{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, binderrors.ErrSource))
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestBuildCatalog_SecondBlockUnterminated(t *testing.T) {
	doc := testutil.BitswapReprovideBlock + "\n" + testutil.Truncate(testutil.BitswapLedgerBlock)

	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err, "a malformed block must not abort the pass")

	assert.Equal(t, []string{"/api/v0/bitswap/reprovide"}, result.Catalog.Paths())
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, "/api/v0/bitswap/ledger", result.Rejections[0].Path)
	assert.Equal(t, ReasonMalformedBlock, result.Rejections[0].Reason)
}

func TestBuildCatalog_TruncatedBeforeNextHeader(t *testing.T) {
	doc := testutil.Truncate(testutil.BitswapLedgerBlock) + "\n" + testutil.BitswapReprovideBlock

	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v0/bitswap/reprovide"}, result.Catalog.Paths())
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, ReasonMalformedBlock, result.Rejections[0].Reason)
	assert.Equal(t, 2, result.Stats.Blocks)
}

func TestBuildCatalog_UnparsableResponse(t *testing.T) {
	doc := testutil.UnparsableResponseBlock + "\n" + testutil.BitswapStatBlock

	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v0/bitswap/stat"}, result.Catalog.Paths())
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, ReasonUnparsableResponse, result.Rejections[0].Reason)
	assert.Equal(t, "/api/v0/broken/response", result.Rejections[0].Path)
}

func TestBuildCatalog_DuplicateLastWins(t *testing.T) {
	replacement := strings.Replace(testutil.BitswapLedgerBlock,
		"Show the current ledger for a peer.", "Show the ledger.", 1)
	doc := testutil.BitswapLedgerBlock + "\n" + testutil.BitswapStatBlock + "\n" + replacement

	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"/api/v0/bitswap/ledger", "/api/v0/bitswap/stat"}, result.Catalog.Paths())
	ep, _ := result.Catalog.Get("/api/v0/bitswap/ledger")
	assert.Equal(t, "Show the ledger.", ep.Description)
	assert.Equal(t, 1, result.Stats.Duplicates)
	assert.Empty(t, result.Rejections)
}

func TestBuildCatalog_IdenticalDuplicatesIdempotent(t *testing.T) {
	once, err := New().ParseBytes([]byte(testutil.BitswapStatBlock))
	require.NoError(t, err)
	twice, err := New().ParseBytes([]byte(testutil.BitswapStatBlock + "\n" + testutil.BitswapStatBlock))
	require.NoError(t, err)

	assert.Equal(t, once.Catalog.Paths(), twice.Catalog.Paths())
	a, _ := once.Catalog.Get("/api/v0/bitswap/stat")
	b, _ := twice.Catalog.Get("/api/v0/bitswap/stat")
	a.Line, b.Line = 0, 0
	assert.Equal(t, a, b)
}

func TestBuildCatalog_EmptyDocument(t *testing.T) {
	result, err := New().ParseBytes([]byte(testutil.DocumentPreamble))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Catalog.Len())
	assert.Empty(t, result.Rejections)
	assert.Nil(t, result.RejectionError())
	assert.Nil(t, result.Issues())
}

func TestBuildCatalog_CRLF(t *testing.T) {
	doc := strings.ReplaceAll(testutil.BitswapLedgerBlock, "\n", "\r\n")
	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, result.Catalog.Len())
	ep, _ := result.Catalog.Get("/api/v0/bitswap/ledger")
	assert.True(t, ep.Arguments[0].Required)
}

func TestParseResult_RejectionError(t *testing.T) {
	doc := testutil.FilesWriteBlock + "\n" + testutil.UnparsableResponseBlock
	result, err := New().ParseBytes([]byte(doc))
	require.NoError(t, err)

	rejErr := result.RejectionError()
	require.Error(t, rejErr)
	assert.True(t, errors.Is(rejErr, binderrors.ErrUnsupportedRequestBody))
	assert.True(t, errors.Is(rejErr, binderrors.ErrUnparsableResponse))
	assert.False(t, errors.Is(rejErr, binderrors.ErrMalformedBlock))
	assert.Contains(t, rejErr.Error(), "2 errors occurred")
}

func TestParseResult_Issues(t *testing.T) {
	doc := testutil.FilesWriteBlock + "\n" + testutil.UnparsableResponseBlock
	result, err := ParseWithOptions(WithBytes([]byte(doc)), WithSourceName("rpc.md"))
	require.NoError(t, err)

	issues := result.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, severity.SeverityInfo, issues[0].Severity)
	assert.Equal(t, severity.SeverityWarning, issues[1].Severity)
	assert.Equal(t, "rpc.md", issues[1].File)
}
