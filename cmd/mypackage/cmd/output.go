package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

func isValidFormat(f string) bool {
	for _, valid := range ValidFormats {
		if f == valid {
			return true
		}
	}
	return false
}

// ArithmeticResult is the structured output of add and multiply.
type ArithmeticResult struct {
	Operation string `json:"operation" yaml:"operation"`
	A         int64  `json:"a" yaml:"a"`
	B         int64  `json:"b" yaml:"b"`
	Result    int64  `json:"result" yaml:"result"`
	Checked   bool   `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// DelayResult is the structured output of delay.
type DelayResult struct {
	Seconds        []float64 `json:"seconds" yaml:"seconds"`
	ElapsedSeconds float64   `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

// VersionInfo is the structured output of version.
type VersionInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// writeOutput writes v encoded as format, or text when format is text.
func writeOutput(w io.Writer, format string, v any, text string) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
