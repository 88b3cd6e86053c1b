package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/mdbind/parser"
)

// documentInput represents the three ways a reference document can be
// provided to a tool. Exactly one of File, URL, or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a markdown API reference on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"http or https URL to fetch a markdown API reference from"`
	Content string `json:"content,omitempty" jsonschema:"Inline markdown API reference content"`
}

// inlineSourceName labels inline content in issues and generated headers.
const inlineSourceName = "content.md"

// resolve parses the document from whichever input was provided.
func (d documentInput) resolve(ts *toolset) (*parser.ParseResult, error) {
	count := 0
	for _, set := range []bool{d.File != "", d.URL != "", d.Content != ""} {
		if set {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if d.Content != "" && int64(len(d.Content)) > ts.cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set MDBIND_MAX_INLINE_SIZE to increase",
			len(d.Content), ts.cfg.MaxInlineSize)
	}

	opts := []parser.Option{parser.WithLogger(ts.logger)}
	if ts.cfg.UserAgent != "" {
		opts = append(opts, parser.WithUserAgent(ts.cfg.UserAgent))
	}

	switch {
	case d.File != "":
		opts = append(opts, parser.WithFilePath(d.File))
	case d.URL != "":
		// A url input must never be read from disk.
		if !strings.HasPrefix(d.URL, "http://") && !strings.HasPrefix(d.URL, "https://") {
			return nil, fmt.Errorf("url must start with http:// or https://")
		}
		opts = append(opts, parser.WithFilePath(d.URL))
		if !ts.cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	default:
		opts = append(opts,
			parser.WithReader(strings.NewReader(d.Content)),
			parser.WithSourceName(inlineSourceName),
		)
	}

	return parser.ParseWithOptions(opts...)
}
