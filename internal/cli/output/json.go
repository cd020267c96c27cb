package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func renderJSON(w io.Writer, body []byte) error {
	if !json.Valid(body) {
		return fmt.Errorf("response is not JSON; use the text format")
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
