package parser

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/erraggy/mdbind"
	"github.com/erraggy/mdbind/binderrors"
)

// defaultFetchTimeout bounds a URL fetch when no HTTPClient is configured.
const defaultFetchTimeout = 30 * time.Second

// isURL checks if the source is a URL (http:// or https://)
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetchURL fetches the markdown document at urlStr.
func (p *Parser) fetchURL(urlStr string) ([]byte, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &binderrors.SourceError{Source: urlStr, Message: "failed to create request", Cause: err}
	}

	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = mdbind.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	p.log().Debug("fetching document", "url", urlStr)
	resp, err := client.Do(req) //nolint:gosec // URL is user-provided input
	if err != nil {
		return nil, &binderrors.SourceError{Source: urlStr, Message: "failed to fetch URL", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &binderrors.SourceError{
			Source:     urlStr,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &binderrors.SourceError{Source: urlStr, Message: "failed to read response body", Cause: err}
	}
	return data, nil
}
