package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// utf8BOM makes spreadsheet tools detect the encoding of Korean labels.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV streams an RFC 4180 extract: a UTF-8 BOM, one header row of
// column labels, then one row per ticket in the given order. Fields
// containing a comma, quote or newline are double-quote escaped.
func WriteCSV(w io.Writer, columns []Column, tickets []domain.Ticket) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for i := range tickets {
		for j, col := range columns {
			row[j] = col.Value(&tickets[i])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RenderCSV materializes the extract in memory.
func RenderCSV(columns []Column, tickets []domain.Ticket) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, columns, tickets); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
