package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"", "text", "json", "yaml"} {
		if _, err := ParseFormat(ok); err != nil {
			t.Errorf("ParseFormat(%q) error: %v", ok, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatText, []byte("relay.rq_total: 1\n")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "relay.rq_total: 1\n" {
		t.Errorf("text output = %q", buf.String())
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, []byte(`{"stats":[{"name":"a","value":1}]}`)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"stats\"") {
		t.Errorf("json output not indented: %q", buf.String())
	}

	if err := Render(&buf, FormatJSON, []byte("plain text")); err == nil {
		t.Error("non-JSON body should fail in json format")
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatYAML, []byte(`{"entries":[{"key":"a","value":"b"}]}`)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "entries:") || !strings.Contains(out, "key: a") {
		t.Errorf("yaml output = %q", out)
	}
}
