// Package corpusutil provides utilities for loading and managing the
// integration test corpus of real-world markdown HTTP API references.
//
// # Usage
//
// Tests should use the SkipIfNotCached helper to gracefully skip when
// corpus files are not available:
//
//	func TestCorpus_Parse(t *testing.T) {
//	    for _, spec := range corpusutil.GetSpecs(false) {
//	        t.Run(spec.Name, func(t *testing.T) {
//	            corpusutil.SkipIfNotCached(t, spec)
//	            // ... test implementation
//	        })
//	    }
//	}
//
// # Downloading the Corpus
//
// Fetch each document's URL into testdata/corpus/ under its Filename.
// These files are not committed to the repository.
package corpusutil
