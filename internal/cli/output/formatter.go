package output

import (
	"fmt"
	"io"
)

// Format is an output format selector.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Render writes an admin response body in the requested format.
func Render(w io.Writer, format Format, body []byte) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, body)
	case FormatYAML:
		return renderYAML(w, body)
	default:
		_, err := w.Write(body)
		return err
	}
}
