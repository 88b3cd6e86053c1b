package corpusutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// SpecInfo contains metadata about a corpus reference document.
type SpecInfo struct {
	Name         string // Human-readable name (e.g., "Kubo")
	Filename     string // Local filename in testdata/corpus/
	URL          string // Remote source URL
	MinEndpoints int    // Lower bound on endpoints the parser should extract
	IsLarge      bool   // True if file size >1MB
	SizeBytes    int64  // Approximate file size in bytes
}

// GetLocalPath returns the absolute path to the cached document.
func (s SpecInfo) GetLocalPath() string {
	return filepath.Join(CorpusDir(), s.Filename)
}

// IsAvailable checks if the document is cached locally.
func (s SpecInfo) IsAvailable() bool {
	_, err := os.Stat(s.GetLocalPath())
	return err == nil
}

// Corpus lists the public markdown API references used for integration testing.
var Corpus = []SpecInfo{
	{
		Name:         "Kubo",
		Filename:     "ipfs-http-api.md",
		URL:          "https://raw.githubusercontent.com/ipfs/ipfs-docs/main/docs/reference/http/api.md",
		MinEndpoints: 100,
		SizeBytes:    250_000,
	},
}

// CorpusDir returns the absolute path to the corpus directory.
func CorpusDir() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if ok {
		// Go up from internal/corpusutil to project root
		projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
		return filepath.Join(projectRoot, "testdata", "corpus")
	}
	return filepath.Join("testdata", "corpus")
}

// GetSpecs returns documents filtered by the includeLarge flag.
func GetSpecs(includeLarge bool) []SpecInfo {
	result := make([]SpecInfo, 0, len(Corpus))
	for _, spec := range Corpus {
		if !includeLarge && spec.IsLarge {
			continue
		}
		result = append(result, spec)
	}
	return result
}

// GetByName returns a document by name, or nil if not found.
func GetByName(name string) *SpecInfo {
	for i := range Corpus {
		if Corpus[i].Name == name {
			return &Corpus[i]
		}
	}
	return nil
}

// SkipIfNotCached skips the test if the corpus file is not available locally.
func SkipIfNotCached(t testing.TB, spec SpecInfo) {
	t.Helper()
	if !spec.IsAvailable() {
		t.Skipf("Corpus file %s not cached locally; download %s into testdata/corpus/", spec.Filename, spec.URL)
	}
}

// SkipLargeInShortMode skips large documents when running with -short flag.
func SkipLargeInShortMode(t testing.TB, spec SpecInfo) {
	t.Helper()
	if testing.Short() && spec.IsLarge {
		t.Skipf("Skipping large document %s in short mode", spec.Name)
	}
}

// SkipIfEnvSet skips the test if the specified environment variable is set to "1".
func SkipIfEnvSet(t testing.TB, envVar string) {
	t.Helper()
	if os.Getenv(envVar) == "1" {
		t.Skipf("Skipping test due to %s=1", envVar)
	}
}
