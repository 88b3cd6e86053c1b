// Package corpus contains integration tests that run the full parse and
// generate pipeline over real-world markdown API references from
// testdata/corpus/. Tests skip when a document is not cached locally.
//
// Run with: go test -tags=integration ./integration/corpus/...
package corpus
