package domain

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseError reports malformed field content during deserialization. It is
// distinct from ShapeError: the field itself is unreadable, as opposed to a
// readable matrix with bad dimensions.
type ParseError struct {
	Row   int
	Col   int
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, field %d: %q is not 0, 1, or empty", e.Row, e.Col, e.Field)
}

// MarshalText renders the canonical persisted form: one comma-separated row
// per line, known cells as their digit, unknown cells as the empty field.
func (g *Grid) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			if v := g.At(r, c); v.Known() {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// ParseCSV reads the canonical form back. Empty fields become Unknown, never
// 0. Malformed fields yield a ParseError; a well-formed but mis-shaped
// matrix yields a ShapeError from New.
func ParseCSV(r io.Reader) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is New's concern
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	rows := make([][]Cell, len(records))
	for r, record := range records {
		rows[r] = make([]Cell, len(record))
		for c, field := range record {
			switch strings.TrimSpace(field) {
			case "":
				rows[r][c] = Unknown
			case "0":
				rows[r][c] = 0
			case "1":
				rows[r][c] = 1
			default:
				return nil, &ParseError{Row: r, Col: c, Field: field}
			}
		}
	}
	return New(rows)
}
