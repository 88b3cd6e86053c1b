package generator

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/erraggy/mdbind/internal/issues"
	"github.com/erraggy/mdbind/internal/options"
	"github.com/erraggy/mdbind/internal/severity"
	"github.com/erraggy/mdbind/parser"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates expected exclusions carried over from parsing
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates skipped endpoints and renamed identifiers
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates problems that fail a strict run
	SeverityError = severity.SeverityError
	// SeverityCritical indicates problems that abort generation
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "client.go", "IPFS.kt")
	Name string
	// Content is the generated source code
	Content []byte
}

// GenerateResult contains the results of generating bindings from a reference document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// Bindings are the target-independent bindings in catalog order
	Bindings []Binding
	// Output is the concatenated binding text (the content of the single output file)
	Output string
	// Target is the calling convention the bindings were emitted for
	Target Target
	// PackageName is the package clause used in generation
	PackageName string
	// TypeName is the generated client struct or interface name
	TypeName string
	// Issues contains parse rejections and generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// ParseResult is the parse pass the bindings were generated from
	ParseResult *parser.ParseResult
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles binding generation from parsed reference documents
type Generator struct {
	// Target selects the calling convention
	// Default: TargetGo
	Target Target

	// PackageName is the package clause of the generated file
	// If empty, defaults to "api"
	PackageName string

	// InterfaceName is the generated client struct (Go) or interface (Kotlin) name
	// If empty, defaults to "Client" for Go and "IPFS" for Kotlin
	InterfaceName string

	// BaseURL is the default server address baked into Go clients
	// If empty, defaults to DefaultBaseURL
	BaseURL string

	// StrictMode causes generation to fail when any endpoint was skipped for
	// a reason other than a request body, or an identifier had to be changed
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string

	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Target:      TargetGo,
		PackageName: "api",
		BaseURL:     DefaultBaseURL,
		IncludeInfo: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	// Configuration options
	target        Target
	packageName   string
	interfaceName string
	baseURL       string
	strictMode    bool
	includeInfo   bool
	userAgent     string
	logger        parser.Logger
}

// GenerateWithOptions generates bindings using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("http-api.md"),
//	    generator.WithTarget(generator.TargetKotlin),
//	    generator.WithPackageName("io.ipfs.api"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		Target:        cfg.target,
		PackageName:   cfg.packageName,
		InterfaceName: cfg.interfaceName,
		BaseURL:       cfg.baseURL,
		StrictMode:    cfg.strictMode,
		IncludeInfo:   cfg.includeInfo,
		UserAgent:     cfg.userAgent,
		Logger:        cfg.logger,
	}

	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return g.GenerateParsed(*cfg.parsed)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("generator: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		target:      TargetGo,
		packageName: "api",
		baseURL:     DefaultBaseURL,
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithTarget selects the calling convention
// Default: TargetGo
func WithTarget(t Target) Option {
	return func(cfg *generateConfig) error {
		if _, err := emitterFor(t); err != nil {
			return fmt.Errorf("generator: %w", err)
		}
		cfg.target = t
		return nil
	}
}

// WithPackageName specifies the package clause of the generated file
// Default: "api"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithInterfaceName specifies the generated client struct or interface name
// Default: "Client" for Go, "IPFS" for Kotlin
func WithInterfaceName(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.interfaceName = name
		return nil
	}
}

// WithBaseURL sets the default server address of generated Go clients
// Default: DefaultBaseURL
func WithBaseURL(baseURL string) Option {
	return func(cfg *generateConfig) error {
		cfg.baseURL = baseURL
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on skipped endpoints)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets a structured logger for the parse and generate passes.
// By default, no logging is performed (nil logger).
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}

// Generate generates bindings from a reference document file or URL
func (g *Generator) Generate(source string) (*GenerateResult, error) {
	p := parser.New()
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}
	p.Logger = g.Logger

	parseResult, err := p.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse document: %w", err)
	}

	return g.GenerateParsed(*parseResult)
}

// GenerateParsed generates bindings from an already-parsed reference document.
//
// An argument type outside the mapping table aborts the run: the returned
// error matches binderrors.ErrUnsupportedArgumentType, and the result carries
// one critical issue per offending argument and no files or bindings.
func (g *Generator) GenerateParsed(parseResult parser.ParseResult) (*GenerateResult, error) {
	startTime := time.Now()

	result := &GenerateResult{
		Files:       make([]GeneratedFile, 0, 1),
		Target:      g.Target,
		PackageName: g.PackageName,
		TypeName:    g.InterfaceName,
		Issues:      make([]GenerateIssue, 0, len(parseResult.Rejections)),
		ParseResult: &parseResult,
	}

	em, err := emitterFor(g.Target)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if result.PackageName == "" {
		result.PackageName = "api"
	}
	if err := em.validatePackage(result.PackageName); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if result.TypeName == "" {
		result.TypeName = em.defaultTypeName()
	}
	if err := validateTypeName(result.TypeName); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	log := g.log().With("source", parseResult.SourcePath, "target", g.Target.String())

	// Parse rejections travel with the output so gaps stay auditable.
	result.Issues = append(result.Issues, parseResult.Issues()...)

	bindings, err := g.buildBindings(parseResult.Catalog, result)
	if err != nil {
		result.Issues = append(result.Issues, typeErrorIssues(err)...)
		result.GenerateTime = time.Since(startTime)
		g.updateCounts(result)
		result.Success = false
		log.Error("generation aborted", "error", err)
		return result, fmt.Errorf("generator: %w", err)
	}

	if g.StrictMode {
		if err := strictModeError(parseResult, result.Issues[len(parseResult.Rejections):]); err != nil {
			result.GenerateTime = time.Since(startTime)
			g.updateCounts(result)
			return result, fmt.Errorf("generator: generation failed in strict mode: %w", err)
		}
	}

	content, err := em.render(&fileData{
		Source:      parseResult.SourcePath,
		PackageName: result.PackageName,
		TypeName:    result.TypeName,
		BaseURL:     baseURL,
		Bindings:    bindings,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: failed to render %s bindings: %w", g.Target, err)
	}

	name := em.fileName(result.TypeName)
	if g.Target == TargetGo {
		formatted, fmtErr := formatAndFixImports(name, content)
		if fmtErr != nil {
			// Unformatted output is still returned so it can be inspected.
			g.addIssue(result, GenerateIssue{
				Path:     name,
				Message:  fmt.Sprintf("generated source could not be formatted: %v", fmtErr),
				Severity: SeverityWarning,
			})
		} else {
			content = formatted
		}
	}

	result.Files = append(result.Files, GeneratedFile{Name: name, Content: content})
	result.Bindings = bindings
	result.Output = string(content)

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	log.Debug("generated bindings",
		"bindings", len(bindings),
		"file", name,
		"warnings", result.WarningCount,
		"duration", result.GenerateTime)

	// Filter info messages if not included
	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// strictModeError aggregates everything a strict run refuses to accept:
// rejected blocks other than request-body exclusions, and generation warnings.
// generated holds only the issues raised by the generator itself.
func strictModeError(parseResult parser.ParseResult, generated []GenerateIssue) error {
	var merr *multierror.Error
	for _, rej := range parseResult.Rejections {
		if rej.Reason != parser.ReasonUnsupportedRequestBody {
			merr = multierror.Append(merr, rej)
		}
	}
	for _, issue := range generated {
		if issue.Severity.AtLeast(SeverityWarning) {
			merr = multierror.Append(merr, fmt.Errorf("%s", issue.String()))
		}
	}
	return merr.ErrorOrNil()
}

// addIssue records a generation issue and logs it.
func (g *Generator) addIssue(result *GenerateResult, issue GenerateIssue) {
	result.Issues = append(result.Issues, issue)
	g.log().Warn("generation issue", "path", issue.Path, "field", issue.Field, "message", issue.Message)
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
