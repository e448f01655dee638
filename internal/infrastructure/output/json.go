package output

import (
	"io"

	"github.com/encapsulab/encapsulab/internal/domain/execution"
	"github.com/goccy/go-json"
)

// JSONFormatter formats run results as a JSON array.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the run results as JSON.
func (f *JSONFormatter) Format(results []*execution.RunResult) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(results, "", "  ")
	} else {
		data, err = json.Marshal(results)
	}
	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
