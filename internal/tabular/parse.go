// Package tabular reads and writes the comma-delimited text used for
// question banks.
package tabular

import "strings"

const (
	delimiter = ','
	quote     = '"'

	// byteOrderMark is written by spreadsheet "CSV UTF-8" exports.
	byteOrderMark = "\ufeff"
)

// Parse splits text into rows of fields in a single pass.
//
// Quoted fields may contain commas, line breaks, and doubled quotes. Blank
// lines are skipped and an unterminated quoted field is accepted as-is.
// A leading byte-order mark is dropped. Empty input yields no rows.
func Parse(text string) [][]string {
	text = strings.TrimPrefix(text, byteOrderMark)

	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	// Fields can hold multi-byte runes; the scan only branches on ASCII
	// bytes, so walking bytes keeps UTF-8 sequences intact.
	for i := 0; i < len(text); i++ {
		ch := text[i]
		var next byte
		if i+1 < len(text) {
			next = text[i+1]
		}

		switch {
		case ch == quote:
			if inQuotes && next == quote {
				field.WriteByte(quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == delimiter && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if field.Len() > 0 || len(row) > 0 {
				row = append(row, field.String())
				rows = append(rows, row)
				row = nil
				field.Reset()
			}
			if ch == '\r' && next == '\n' {
				i++
			}
		default:
			field.WriteByte(ch)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}
