//go:build integration

package harness

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// LoadScenario loads a single scenario from a YAML file. Unknown keys are
// errors so a misspelled expectation cannot pass silently.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("harness: failed to read scenario file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var scenario Scenario
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("harness: failed to parse scenario file %s: %w", path, err)
	}
	scenario.filePath = path

	if err := ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("harness: invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadAllScenarios loads every .yaml and .yml scenario under dir, in
// lexical path order.
func LoadAllScenarios(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		scenario, err := LoadScenario(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, scenario)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("harness: failed to load scenarios from %s: %w", dir, err)
	}
	return scenarios, nil
}

// ValidateScenario validates a scenario's structure and required fields.
func ValidateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}

	if len(s.Pipeline) == 0 {
		return fmt.Errorf("scenario '%s' must have at least one pipeline step", s.Name)
	}

	if s.Input == "" {
		return fmt.Errorf("scenario '%s' must specify an input document", s.Name)
	}

	// Validate each step
	for i, step := range s.Pipeline {
		if err := validateStep(&step, i); err != nil {
			return fmt.Errorf("scenario '%s': %w", s.Name, err)
		}
	}

	return nil
}

// validateStep validates a single pipeline step.
func validateStep(step *Step, index int) error {
	if step.Name == "" {
		return fmt.Errorf("step %d must have a name", index+1)
	}

	// Validate step name is recognized
	validSteps := map[string]bool{
		"parse":    true,
		"generate": true,
	}

	if !validSteps[step.Name] {
		return fmt.Errorf("step %d: unknown step type '%s'", index+1, step.Name)
	}

	// Validate expect value if specified
	if step.Expect != "" && step.Expect != "success" && step.Expect != "error" {
		return fmt.Errorf("step %d (%s): invalid expect value '%s' (must be success or error)",
			index+1, step.Name, step.Expect)
	}

	if step.TypeCheck && step.Name != "generate" {
		return fmt.Errorf("step %d (%s): type-check only applies to generate steps", index+1, step.Name)
	}

	return nil
}

// ScenarioPath returns the relative path of the scenario file for display.
func ScenarioPath(s *Scenario, baseDir string) string {
	if s.filePath == "" {
		return s.Name
	}
	rel, err := filepath.Rel(baseDir, s.filePath)
	if err != nil {
		return s.filePath
	}
	return rel
}

// ScenarioTestName returns a test-friendly name for the scenario.
func ScenarioTestName(s *Scenario, baseDir string) string {
	// Use the relative path without extension as the test name
	path := ScenarioPath(s, baseDir)
	// Remove .yaml/.yml extension
	path = strings.TrimSuffix(path, ".yaml")
	path = strings.TrimSuffix(path, ".yml")
	// Replace path separators with /
	path = strings.ReplaceAll(path, string(filepath.Separator), "/")
	return path
}
