package parser

import (
	"errors"
	"fmt"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/issues"
	"github.com/erraggy/mdbind/internal/severity"
)

// Issue is a diagnostic record derived from a rejection.
type Issue = issues.Issue

// RejectReason is why an endpoint block was left out of the catalog.
type RejectReason int

const (
	// ReasonUnsupportedRequestBody marks an expected exclusion: the block
	// declares a request body.
	ReasonUnsupportedRequestBody RejectReason = iota
	// ReasonMalformedBlock means the block ended before its terminator.
	ReasonMalformedBlock
	// ReasonUnparsableResponse means the response could not be classified.
	ReasonUnparsableResponse
)

// String returns the reason name.
func (r RejectReason) String() string {
	switch r {
	case ReasonUnsupportedRequestBody:
		return "UnsupportedRequestBody"
	case ReasonMalformedBlock:
		return "MalformedBlock"
	case ReasonUnparsableResponse:
		return "UnparsableResponse"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r RejectReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Rejection is one entry of the rejection log.
type Rejection struct {
	// Path is the endpoint path from the block header
	Path string `json:"path" yaml:"path"`
	// Line is the 1-based line of the block header
	Line int `json:"line" yaml:"line"`
	// Reason is why the block was rejected
	Reason RejectReason `json:"reason" yaml:"reason"`
	// Message is a human-readable description
	Message string `json:"message" yaml:"message"`
	// Err is the underlying error
	Err error `json:"-" yaml:"-"`
}

// newRejection classifies a block parse error. It returns false for errors
// that are not block failures.
func newRejection(err error) (Rejection, bool) {
	var blockErr *binderrors.BlockError
	if !errors.As(err, &blockErr) {
		return Rejection{}, false
	}
	reason := ReasonMalformedBlock
	if blockErr.Kind == binderrors.KindUnparsableResponse {
		reason = ReasonUnparsableResponse
	}
	return Rejection{
		Path:    blockErr.Path,
		Line:    blockErr.Line,
		Reason:  reason,
		Message: blockErr.Error(),
		Err:     err,
	}, true
}

// requestBodyRejection records an endpoint excluded for its request body.
func requestBodyRejection(ep *Endpoint) Rejection {
	return Rejection{
		Path:    ep.Path,
		Line:    ep.Line,
		Reason:  ReasonUnsupportedRequestBody,
		Message: "request body sections are not supported; endpoint skipped",
		Err:     fmt.Errorf("%w: %s", binderrors.ErrUnsupportedRequestBody, ep.Path),
	}
}

// Error implements error so rejections can be aggregated.
func (r Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Path, r.Reason)
}

// Unwrap returns the underlying error.
func (r Rejection) Unwrap() error {
	return r.Err
}

// Issue converts the rejection to a diagnostic record. Request-body
// exclusions are informational; block failures are warnings.
func (r Rejection) Issue() Issue {
	sev := severity.SeverityWarning
	if r.Reason == ReasonUnsupportedRequestBody {
		sev = severity.SeverityInfo
	}
	return Issue{
		Path:     r.Path,
		Message:  r.Message,
		Severity: sev,
		Field:    r.Reason.String(),
		Line:     r.Line,
	}
}
