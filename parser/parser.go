package parser

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/erraggy/mdbind"
	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/lines"
)

// Parser handles markdown API reference parsing
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "mdbind/<version>" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: mdbind.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// Stats contains counts gathered during one parse pass.
type Stats struct {
	// Blocks is the number of endpoint headers seen
	Blocks int `json:"blocks" yaml:"blocks"`
	// Endpoints is the number of endpoints in the catalog
	Endpoints int `json:"endpoints" yaml:"endpoints"`
	// Rejected is the number of rejection log entries
	Rejected int `json:"rejected" yaml:"rejected"`
	// Duplicates is the number of successful parses that replaced an earlier one
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	// Arguments is the total argument count across the catalog
	Arguments int `json:"arguments" yaml:"arguments"`
}

// ParseResult contains the catalog and rejection log of one parse pass.
//
// Callers should treat ParseResult as read-only after parsing.
type ParseResult struct {
	// SourcePath is the file path or URL the document was read from.
	// For readers and byte slices this is "ParseReader.md" or "ParseBytes.md"
	// unless overridden with WithSourceName.
	SourcePath string `json:"source_path" yaml:"source_path"`
	// Catalog holds the successfully parsed endpoints in document order
	Catalog *Catalog `json:"catalog" yaml:"catalog"`
	// Rejections lists every endpoint left out of the catalog, with its reason
	Rejections []Rejection `json:"rejections,omitempty" yaml:"rejections,omitempty"`
	// Stats contains statistical information about the pass
	Stats Stats `json:"stats" yaml:"stats"`
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration `json:"load_time" yaml:"load_time"`
	// ParseTime is the time taken to build the catalog
	ParseTime time.Duration `json:"parse_time" yaml:"parse_time"`
	// SourceSize is the size of the source data in bytes
	SourceSize int64 `json:"source_size" yaml:"source_size"`
}

// HasRejections returns true if any endpoint was rejected.
func (pr *ParseResult) HasRejections() bool {
	return len(pr.Rejections) > 0
}

// Issues returns the rejection log as diagnostic records.
func (pr *ParseResult) Issues() []Issue {
	if len(pr.Rejections) == 0 {
		return nil
	}
	out := make([]Issue, 0, len(pr.Rejections))
	for _, r := range pr.Rejections {
		issue := r.Issue()
		issue.File = pr.SourcePath
		out = append(out, issue)
	}
	return out
}

// RejectionError aggregates the rejection log into one error, or returns nil
// when nothing was rejected. Each rejection can be matched with errors.Is
// against the binderrors sentinels.
func (pr *ParseResult) RejectionError() error {
	var merr *multierror.Error
	for _, r := range pr.Rejections {
		merr = multierror.Append(merr, r)
	}
	return merr.ErrorOrNil()
}

// Parse parses a markdown document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
func (p *Parser) Parse(source string) (*ParseResult, error) {
	var data []byte
	var err error

	loadStart := time.Now()
	if isURL(source) {
		data, err = p.fetchURL(source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = &binderrors.SourceError{Source: source, Message: "failed to read file", Cause: err}
		}
	}
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	res, err := p.parseData(data, source)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a markdown document from an io.Reader
// The reader is consumed to the end before parsing starts.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", &binderrors.SourceError{
			Source:  "ParseReader.md",
			Message: "failed to read data",
			Cause:   err,
		})
	}
	res, err := p.parseData(data, "ParseReader.md")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a markdown document from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseData(data, "ParseBytes.md")
}

func (p *Parser) parseData(data []byte, sourcePath string) (*ParseResult, error) {
	result := &ParseResult{
		SourcePath: sourcePath,
		Catalog:    NewCatalog(),
		SourceSize: int64(len(data)),
	}

	log := p.log().With("source", sourcePath)
	log.Debug("parsing document", "bytes", len(data))

	start := time.Now()
	if err := p.buildCatalog(bytes.NewReader(data), result, log); err != nil {
		return nil, err
	}
	result.ParseTime = time.Since(start)

	log.Debug("parsed document",
		"endpoints", result.Stats.Endpoints,
		"rejected", result.Stats.Rejected,
		"duration", result.ParseTime)
	return result, nil
}

// buildCatalog scans the whole document, hands every endpoint block to the
// block parser, and sorts the outcomes into the catalog or the rejection log.
func (p *Parser) buildCatalog(r io.Reader, result *ParseResult, log Logger) error {
	cursor := lines.New(r)

	for {
		line, ok := cursor.Next()
		if !ok {
			break
		}
		if !IsEndpointHeader(line) {
			continue
		}
		result.Stats.Blocks++
		path := strings.TrimSpace(line[len("## "):])

		ep, err := parseBlock(cursor, path, cursor.Line())
		if err != nil {
			rej, ok := newRejection(err)
			if !ok {
				return fmt.Errorf("parser: %w", err)
			}
			p.reject(result, rej, log)
			continue
		}

		if ep.HasUnsupportedBody {
			p.reject(result, requestBodyRejection(ep), log)
			continue
		}

		if result.Catalog.put(*ep) {
			result.Stats.Duplicates++
			log.Info("duplicate endpoint path, keeping last", "path", ep.Path, "line", ep.Line)
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("parser: %w", &binderrors.SourceError{
			Source:  result.SourcePath,
			Message: fmt.Sprintf("read failed after line %d", cursor.Line()),
			Cause:   err,
		})
	}

	result.Stats.Endpoints = result.Catalog.Len()
	for _, ep := range result.Catalog.Endpoints() {
		result.Stats.Arguments += len(ep.Arguments)
	}
	return nil
}

func (p *Parser) reject(result *ParseResult, rej Rejection, log Logger) {
	result.Rejections = append(result.Rejections, rej)
	result.Stats.Rejected++
	if rej.Reason == ReasonUnsupportedRequestBody {
		log.Info("skipping endpoint", "path", rej.Path, "reason", rej.Reason.String())
		return
	}
	log.Warn("rejected endpoint", "path", rej.Path, "line", rej.Line, "reason", rej.Reason.String(), "error", rej.Message)
}
