//go:build integration

// Package harness provides the integration test framework for mdbind.
// It enables declarative scenario-driven testing via YAML files.
package harness

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/mdbind/generator"
	mdparser "github.com/erraggy/mdbind/parser"
)

// Scenario represents a complete integration test scenario.
type Scenario struct {
	// Name is a short, descriptive name for the scenario
	Name string `yaml:"name"`
	// Description provides additional context about what the scenario tests
	Description string `yaml:"description,omitempty"`
	// Input is the markdown document to read, relative to the inputs directory
	Input string `yaml:"input"`
	// Pipeline is the sequence of steps to execute
	Pipeline []Step `yaml:"pipeline"`
	// Skip provides a reason to skip this scenario (if set, scenario is skipped)
	Skip string `yaml:"skip,omitempty"`

	// filePath is the path to the scenario file (set by loader)
	filePath string
}

// Step is a single pipeline stage.
type Step struct {
	// Name is the step type: parse or generate
	Name string `yaml:"name"`
	// Expect is success (default) or error
	Expect string `yaml:"expect,omitempty"`

	// Target, Package, Interface and Strict configure a generate step
	Target    string `yaml:"target,omitempty"`
	Package   string `yaml:"package,omitempty"`
	Interface string `yaml:"interface,omitempty"`
	Strict    bool   `yaml:"strict,omitempty"`

	// Endpoints is the expected catalog size after a parse step
	Endpoints *int `yaml:"endpoints,omitempty"`
	// Rejections is the expected rejection count after a parse step
	Rejections *int `yaml:"rejections,omitempty"`
	// Bindings is the expected binding count after a generate step
	Bindings *int `yaml:"bindings,omitempty"`
	// File is the expected generated file name
	File string `yaml:"file,omitempty"`
	// Contains lists substrings the generated output must include
	Contains []string `yaml:"contains,omitempty"`
	// TypeCheck runs the Go type checker over generated Go output
	TypeCheck bool `yaml:"type-check,omitempty"`
}

// StepResult records the outcome of one step.
type StepResult struct {
	Name     string
	Success  bool
	Duration time.Duration
	Err      error
}

// PipelineResult records the outcome of a scenario.
type PipelineResult struct {
	Scenario string
	Steps    []StepResult
	Success  bool
	Err      error
	Duration time.Duration
}

// pipelineState carries documents between steps.
type pipelineState struct {
	inputPath   string
	parseResult *mdparser.ParseResult
}

// RunScenario executes every step of s against inputs found in inputsDir.
func RunScenario(t *testing.T, s *Scenario, inputsDir string) *PipelineResult {
	t.Helper()

	if s.Skip != "" {
		t.Skipf("scenario skipped: %s", s.Skip)
	}

	result := &PipelineResult{Scenario: s.Name, Success: true}
	state := &pipelineState{inputPath: filepath.Join(inputsDir, s.Input)}
	start := time.Now()

	for i, step := range s.Pipeline {
		stepStart := time.Now()
		err := runStep(state, step)
		sr := StepResult{Name: step.Name, Success: err == nil, Duration: time.Since(stepStart), Err: err}
		result.Steps = append(result.Steps, sr)
		if err != nil {
			result.Success = false
			result.Err = fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
			break
		}
	}

	result.Duration = time.Since(start)
	return result
}

func runStep(state *pipelineState, step Step) error {
	switch step.Name {
	case "parse":
		return runParse(state, step)
	case "generate":
		return runGenerate(state, step)
	default:
		return fmt.Errorf("unknown step type %q", step.Name)
	}
}

func runParse(state *pipelineState, step Step) error {
	result, err := mdparser.ParseWithOptions(mdparser.WithFilePath(state.inputPath))
	if step.Expect == "error" {
		if err == nil {
			return fmt.Errorf("expected parse error, got none")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	state.parseResult = result

	if step.Endpoints != nil && result.Catalog.Len() != *step.Endpoints {
		return fmt.Errorf("expected %d endpoints, got %d", *step.Endpoints, result.Catalog.Len())
	}
	if step.Rejections != nil && len(result.Rejections) != *step.Rejections {
		return fmt.Errorf("expected %d rejections, got %d", *step.Rejections, len(result.Rejections))
	}
	return nil
}

func runGenerate(state *pipelineState, step Step) error {
	opts := []generator.Option{generator.WithStrictMode(step.Strict)}
	if state.parseResult != nil {
		opts = append(opts, generator.WithParsed(*state.parseResult))
	} else {
		opts = append(opts, generator.WithFilePath(state.inputPath))
	}
	if step.Target != "" {
		target, err := generator.ParseTarget(step.Target)
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithTarget(target))
	}
	if step.Package != "" {
		opts = append(opts, generator.WithPackageName(step.Package))
	}
	if step.Interface != "" {
		opts = append(opts, generator.WithInterfaceName(step.Interface))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if step.Expect == "error" {
		if err == nil {
			return fmt.Errorf("expected generate error, got none")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	if step.Bindings != nil && len(result.Bindings) != *step.Bindings {
		return fmt.Errorf("expected %d bindings, got %d", *step.Bindings, len(result.Bindings))
	}
	if step.File != "" && result.GetFile(step.File) == nil {
		return fmt.Errorf("expected generated file %s", step.File)
	}
	for _, want := range step.Contains {
		if !strings.Contains(result.Output, want) {
			return fmt.Errorf("generated output does not contain %q", want)
		}
	}
	if step.TypeCheck {
		if result.Target != generator.TargetGo {
			return fmt.Errorf("type-check requires the go target, got %s", result.Target)
		}
		return TypeCheckGo(result.Output)
	}
	return nil
}

// TypeCheckGo parses and type-checks a single generated Go file against the
// standard library.
func TypeCheckGo(src string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("generated Go does not parse: %w", err)
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	if _, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, nil); err != nil {
		return fmt.Errorf("generated Go does not type-check: %w", err)
	}
	return nil
}

// PrintPipelineResult logs a per-step summary.
func PrintPipelineResult(t *testing.T, r *PipelineResult) {
	t.Helper()
	for _, s := range r.Steps {
		status := "ok"
		if !s.Success {
			status = "FAIL"
		}
		t.Logf("  %-8s %-4s %v", s.Name, status, s.Duration.Round(time.Microsecond))
	}
}
