package parser

import (
	"regexp"
	"strings"

	"github.com/erraggy/mdbind/binderrors"
	"github.com/erraggy/mdbind/internal/lines"
)

// argumentPattern matches "- `name` [type]: description".
// The type token may be wrapped in angle brackets, e.g. [<uint64>].
var argumentPattern = regexp.MustCompile("^- `([\\w.-]+)` \\[(<?\\w+>?)\\]: ?(.*)$")

// jsonFencePattern matches the first ```json fenced block.
var jsonFencePattern = regexp.MustCompile("(?s)```json(.*?)```")

// blockReader reads the lines of one endpoint block. A peeked endpoint
// header ends the block without being consumed, so the catalog builder
// sees it next.
type blockReader struct {
	cursor *lines.Cursor
}

func (b blockReader) next() (string, bool) {
	line, ok := b.cursor.Peek()
	if !ok || IsEndpointHeader(line) {
		return "", false
	}
	return b.cursor.Next()
}

// parseBlock parses one endpoint block. The cursor must be positioned on the
// line after the block header; path is the header's route and headerLine its
// line number.
func parseBlock(cursor *lines.Cursor, path string, headerLine int) (*Endpoint, error) {
	r := blockReader{cursor: cursor}
	ep := &Endpoint{Path: path, Line: headerLine}

	mode := ModeSkip
	for {
		line, ok := r.next()
		if !ok {
			return nil, malformedBlock(path, headerLine, "no description or section before end of input")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		mode = NextMode(line, ModeSkip)
		switch mode {
		case ModeSkip:
			ep.Description = strings.TrimSpace(line)
		case ModeRequestBody:
			ep.HasUnsupportedBody = true
		}
		break
	}

	var response strings.Builder
	for mode != ModeDone {
		line, ok := r.next()
		if !ok {
			return nil, malformedBlock(path, headerLine, "missing "+MarkerEnd+" terminator")
		}
		if IsMarker(line) {
			mode = NextMode(line, mode)
			if mode == ModeRequestBody {
				ep.HasUnsupportedBody = true
			}
			continue
		}

		switch mode {
		case ModeArguments:
			if m := argumentPattern.FindStringSubmatch(line); m != nil {
				ep.Arguments = append(ep.Arguments, newArgument(m[1], m[2], m[3]))
			}
		case ModeResponse:
			response.WriteString(line)
			response.WriteByte('\n')
		case ModeCurlExample, ModeRequestBody, ModeSkip:
		}
	}

	resp, err := finalizeResponse(path, headerLine, response.String())
	if err != nil {
		// Request-body endpoints are excluded regardless of their response.
		if ep.HasUnsupportedBody {
			return ep, nil
		}
		return nil, err
	}
	ep.Response = resp
	return ep, nil
}

// finalizeResponse splits the buffered response section into its
// description and example.
func finalizeResponse(path string, headerLine int, buf string) (Response, error) {
	text := strings.TrimLeft(buf, "\r\n")
	text = strings.TrimPrefix(text, MarkerResponse)

	if loc := jsonFencePattern.FindStringSubmatchIndex(text); loc != nil {
		example := text[loc[2]:loc[3]]
		outside := text[:loc[0]] + text[loc[1]:]
		return newResponse(collapseLines(outside), example), nil
	}

	if hasRawSentinel(text) {
		raw := strings.TrimSpace(text)
		return newResponse(raw, raw), nil
	}

	return Response{}, &binderrors.BlockError{
		Kind:    binderrors.KindUnparsableResponse,
		Path:    path,
		Line:    headerLine,
		Message: "no ```json example and no text/plain notice",
	}
}

// collapseLines trims s and joins its non-empty lines with single spaces.
func collapseLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func malformedBlock(path string, headerLine int, msg string) error {
	return &binderrors.BlockError{
		Kind:    binderrors.KindMalformedBlock,
		Path:    path,
		Line:    headerLine,
		Message: msg,
	}
}
