package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/mdbind/parser"
)

type parseInput struct {
	Document documentInput `json:"document"          jsonschema:"The markdown API reference to parse"`
	Full     bool          `json:"full,omitempty"    jsonschema:"Include arguments and response details for each endpoint"`
	Offset   int           `json:"offset,omitempty"  jsonschema:"Skip the first N endpoints"`
	Limit    int           `json:"limit,omitempty"   jsonschema:"Maximum number of endpoints to return (default 100)"`
}

type argumentDetail struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

type endpointDetail struct {
	Path                string           `json:"path"`
	Line                int              `json:"line,omitempty"`
	Description         string           `json:"description,omitempty"`
	ContentClass        string           `json:"content_class"`
	ArgumentCount       int              `json:"argument_count"`
	Arguments           []argumentDetail `json:"arguments,omitempty"`
	ResponseDescription string           `json:"response_description,omitempty"`
	Example             string           `json:"example,omitempty"`
}

type rejectionSummary struct {
	Path    string `json:"path"`
	Line    int    `json:"line,omitempty"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type parseOutput struct {
	Source         string             `json:"source"`
	EndpointCount  int                `json:"endpoint_count"`
	RejectedCount  int                `json:"rejected_count"`
	DuplicateCount int                `json:"duplicate_count"`
	ArgumentCount  int                `json:"argument_count"`
	Returned       int                `json:"returned"`
	Endpoints      []endpointDetail   `json:"endpoints,omitempty"`
	Rejections     []rejectionSummary `json:"rejections,omitempty"`
}

func (ts *toolset) handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Document.resolve(ts)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Source:         result.SourcePath,
		EndpointCount:  result.Stats.Endpoints,
		RejectedCount:  result.Stats.Rejected,
		DuplicateCount: result.Stats.Duplicates,
		ArgumentCount:  result.Stats.Arguments,
	}

	page := paginate(result.Catalog.Endpoints(), input.Offset, input.Limit)
	output.Returned = len(page)
	output.Endpoints = makeSlice[endpointDetail](len(page))
	for _, ep := range page {
		output.Endpoints = append(output.Endpoints, newEndpointDetail(ep, input.Full))
	}

	output.Rejections = makeSlice[rejectionSummary](len(result.Rejections))
	for _, rej := range result.Rejections {
		output.Rejections = append(output.Rejections, rejectionSummary{
			Path:    rej.Path,
			Line:    rej.Line,
			Reason:  rej.Reason.String(),
			Message: rej.Message,
		})
	}

	return nil, output, nil
}

func newEndpointDetail(ep parser.Endpoint, full bool) endpointDetail {
	d := endpointDetail{
		Path:          ep.Path,
		Line:          ep.Line,
		Description:   ep.Description,
		ContentClass:  ep.Response.ContentClass.String(),
		ArgumentCount: len(ep.Arguments),
	}
	if !full {
		return d
	}
	d.Arguments = makeSlice[argumentDetail](len(ep.Arguments))
	for _, arg := range ep.Arguments {
		d.Arguments = append(d.Arguments, argumentDetail{
			Name:        arg.Name,
			Type:        arg.DocType,
			Description: arg.Description,
			Required:    arg.Required,
		})
	}
	d.ResponseDescription = ep.Response.Description
	d.Example = ep.Response.Example
	return d
}
