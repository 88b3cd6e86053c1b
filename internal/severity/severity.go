// Package severity provides severity level constants shared by the parser
// and generator diagnostics.
//
// The levels, from least to most severe:
//   - SeverityInfo: expected exclusions, such as request-body endpoints
//   - SeverityWarning: endpoint blocks skipped because they could not be parsed
//   - SeverityError: problems that fail a strict run
//   - SeverityCritical: problems that abort generation outright
package severity

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	// SeverityError indicates a problem that fails a strict run.
	SeverityError Severity = iota

	// SeverityWarning indicates an endpoint that was skipped because its
	// block was malformed or its response unparsable.
	SeverityWarning

	// SeverityInfo indicates an expected, non-actionable exclusion.
	SeverityInfo

	// SeverityCritical indicates a problem that aborts the whole run.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render by name
// in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AtLeast reports whether s is at least as severe as other.
// The constant values are not ordered by severity, so comparison goes
// through rank.
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}
