// Package stonfixture loads YAML-backed test corpora for table-driven
// tests, the way parser's psqldef fixture reader turned a YAML file of
// input/expected pairs into Go test cases without hand-writing each one.
package stonfixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Case is one entry of a roundtrip fixture file: a name for test output,
// the source text to feed the system under test, and the expected
// canonical result.
type Case struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Expected string `yaml:"expected"`
}

// ErrorCase is one entry of an error fixture file: input text that must
// be rejected, along with a substring expected to appear in the error.
type ErrorCase struct {
	Name          string `yaml:"name"`
	Input         string `yaml:"input"`
	ErrorContains string `yaml:"error_contains"`
}

// LoadCases reads a YAML file of roundtrip cases from path.
func LoadCases(path string) ([]Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	var cases []Case
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return cases, nil
}

// LoadErrorCases reads a YAML file of error cases from path.
func LoadErrorCases(path string) ([]ErrorCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	var cases []ErrorCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	return cases, nil
}
