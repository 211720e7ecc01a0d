// Package table renders left-justified, fixed-width text tables.
package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Separator joins the columns of a row.
const Separator = "  "

// Column pairs a header label with the accessor producing each row's cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Render writes a header line, a dash rule as wide as the header line, and one
// line per row. Every column is padded to the widest of its header and cells,
// so an empty rows slice still produces the header and rule.
func Render[T any](w io.Writer, columns []Column[T], rows []T) error {
	widths := make([]int, len(columns))
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
		widths[i] = utf8.RuneCountInString(col.Header)
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			value := col.Value(row)
			cells[r][i] = value
			widths[i] = max(widths[i], utf8.RuneCountInString(value))
		}
	}

	bw := bufio.NewWriter(w)

	header := formatRow(headers, widths)
	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, row := range cells {
		fmt.Fprintln(bw, formatRow(row, widths))
	}

	return bw.Flush()
}

func formatRow(values []string, widths []int) string {
	padded := make([]string, len(values))
	for i, value := range values {
		padded[i] = pad(value, widths[i])
	}
	return strings.Join(padded, Separator)
}

func pad(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}
