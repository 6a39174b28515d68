package tabular

import (
	"fmt"
	"io"
	"strings"
)

// QuoteField wraps s in double quotes, doubling any embedded quotes.
func QuoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatRow renders one row with every field quoted.
func FormatRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = QuoteField(f)
	}
	return strings.Join(quoted, string(delimiter))
}

// Write renders header followed by rows, one line each. The header is
// written bare; data fields are always quoted.
func Write(w io.Writer, header []string, rows [][]string) error {
	if len(header) > 0 {
		if _, err := io.WriteString(w, strings.Join(header, string(delimiter))+"\n"); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i, r := range rows {
		if _, err := io.WriteString(w, FormatRow(r)+"\n"); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}
