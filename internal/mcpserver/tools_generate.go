package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/mdbind/generator"
)

type generateInput struct {
	Document      documentInput `json:"document"                 jsonschema:"The markdown API reference to generate bindings from"`
	Target        string        `json:"target,omitempty"         jsonschema:"go or kotlin (default: MDBIND_TARGET, else go)"`
	PackageName   string        `json:"package_name,omitempty"   jsonschema:"Package clause of the generated file (default: MDBIND_PACKAGE, else api)"`
	InterfaceName string        `json:"interface_name,omitempty" jsonschema:"Client struct or interface name (default: Client for go, IPFS for kotlin)"`
	BaseURL       string        `json:"base_url,omitempty"       jsonschema:"Default server address of generated Go clients"`
	Strict        bool          `json:"strict,omitempty"         jsonschema:"Fail when any endpoint is skipped for a reason other than a request body"`
	OutputDir     string        `json:"output_dir,omitempty"     jsonschema:"Directory to write the generated file to; when empty the source is returned inline"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Path string `json:"path,omitempty"`
}

type issueSummary struct {
	Path     string `json:"path"`
	Line     int    `json:"line,omitempty"`
	Severity string `json:"severity"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

type generateOutput struct {
	Success       bool              `json:"success"`
	Target        string            `json:"target"`
	PackageName   string            `json:"package_name"`
	TypeName      string            `json:"type_name"`
	File          generatedFileInfo `json:"file"`
	BindingCount  int               `json:"binding_count"`
	InfoCount     int               `json:"info_count"`
	WarningCount  int               `json:"warning_count"`
	CriticalCount int               `json:"critical_count"`
	Issues        []issueSummary    `json:"issues,omitempty"`
	Output        string            `json:"output,omitempty"`
}

func (ts *toolset) handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	targetName := input.Target
	if targetName == "" {
		targetName = ts.cfg.Target
	}
	target, err := generator.ParseTarget(targetName)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	parseResult, err := input.Document.resolve(ts)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	packageName := input.PackageName
	if packageName == "" {
		packageName = ts.cfg.Package
	}
	interfaceName := input.InterfaceName
	if interfaceName == "" {
		interfaceName = ts.cfg.Interface
	}
	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = ts.cfg.BaseURL
	}

	result, err := generator.GenerateWithOptions(
		generator.WithParsed(*parseResult),
		generator.WithTarget(target),
		generator.WithPackageName(packageName),
		generator.WithInterfaceName(interfaceName),
		generator.WithBaseURL(baseURL),
		generator.WithStrictMode(input.Strict || ts.cfg.Strict),
		generator.WithIncludeInfo(ts.cfg.IncludeInfo),
		generator.WithLogger(ts.logger),
	)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	file := result.Files[0]
	output := generateOutput{
		Success:       result.Success,
		Target:        result.Target.String(),
		PackageName:   result.PackageName,
		TypeName:      result.TypeName,
		File:          generatedFileInfo{Name: file.Name, Size: len(file.Content)},
		BindingCount:  len(result.Bindings),
		InfoCount:     result.InfoCount,
		WarningCount:  result.WarningCount,
		CriticalCount: result.CriticalCount,
	}

	output.Issues = makeSlice[issueSummary](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issueSummary{
			Path:     issue.Path,
			Line:     issue.Line,
			Severity: issue.Severity.String(),
			Field:    issue.Field,
			Message:  issue.Message,
		})
	}

	if input.OutputDir == "" {
		output.Output = result.Output
		return nil, output, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated file: %w", err)), generateOutput{}, nil
	}
	output.File.Path = filepath.Join(input.OutputDir, file.Name)

	return nil, output, nil
}
