//go:build integration

package corpus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/mdbind/internal/corpusutil"
	"github.com/erraggy/mdbind/parser"
)

// parseCorpusSpec parses a cached corpus document by name, skipping when absent.
func parseCorpusSpec(t *testing.T, name string) (*parser.ParseResult, corpusutil.SpecInfo) {
	t.Helper()

	spec := corpusutil.GetByName(name)
	require.NotNil(t, spec, "unknown corpus document %s", name)
	corpusutil.SkipIfNotCached(t, *spec)
	corpusutil.SkipLargeInShortMode(t, *spec)

	result, err := parser.ParseWithOptions(parser.WithFilePath(spec.GetLocalPath()))
	require.NoError(t, err, "failed to parse %s", name)
	return result, *spec
}
