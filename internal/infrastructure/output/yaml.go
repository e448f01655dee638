package output

import (
	"io"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/goccy/go-yaml"
)

// YAMLFormatter formats run results as a YAML sequence.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the run results as YAML.
func (f *YAMLFormatter) Format(results []*execution.RunResult) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(results); err != nil {
		return err
	}

	return encoder.Close()
}
