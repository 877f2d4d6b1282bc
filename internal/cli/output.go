package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter handles two output modes: JSON and human-readable
type OutputFormatter struct {
	JSON bool
	Out  io.Writer
	Err  io.Writer
}

// Success outputs a result. pretty renders the human-readable form.
func (f *OutputFormatter) Success(data any, pretty func(w io.Writer) error) error {
	if f.JSON {
		enc := json.NewEncoder(f.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}
	if pretty == nil {
		_, err := fmt.Fprintf(f.Out, "%+v\n", data)
		return err
	}
	return pretty(f.Out)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	_, err := fmt.Fprintf(f.Err, "Error: %s\n", message)
	return err
}
