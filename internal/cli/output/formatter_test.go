package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	if err := f.Format(&buf, map[string]int{"key": 1}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), `"key": 1`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTableFormatter(t *testing.T) {
	tbl := &Table{Headers: []string{"KEY", "VALUE"}}
	tbl.AddRow("1", "100")
	tbl.AddRow("2", "200")

	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Format(&buf, tbl); err != nil {
		t.Fatalf("Format: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Errorf("header line = %q", lines[0])
	}
}

func TestTableFormatterNoHeaders(t *testing.T) {
	tbl := &Table{Headers: []string{"KEY"}}
	tbl.AddRow("1")

	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}
	if err := f.Format(&buf, tbl); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(buf.String(), "KEY") {
		t.Errorf("headers should be suppressed: %q", buf.String())
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := New("json").(*JSONFormatter); !ok {
		t.Error("New(json) should return JSONFormatter")
	}
	if _, ok := New("table").(*TableFormatter); !ok {
		t.Error("New(table) should return TableFormatter")
	}
	if _, ok := New("").(*TableFormatter); !ok {
		t.Error("New fallback should return TableFormatter")
	}
}
