// Package output provides output formatting for lockmap-cli.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Formatter renders CLI results to a writer.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// New returns the formatter for the given format name ("json" or
// "table"). Unknown names fall back to table.
func New(format string) Formatter {
	switch format {
	case "json":
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter formats data as indented JSON.
type JSONFormatter struct{}

// Format writes data as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// TableFormatter formats Table values with aligned columns. Other
// values fall back to JSON.
type TableFormatter struct {
	NoHeaders bool
}

// Format renders data. Table values get tabular output; anything else
// is encoded as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	t, ok := data.(*Table)
	if !ok {
		return (&JSONFormatter{}).Format(w, data)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if !f.NoHeaders && len(t.Headers) > 0 {
		for i, h := range t.Headers {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, h)
		}
		fmt.Fprintln(tw)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}

	return nil
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}
