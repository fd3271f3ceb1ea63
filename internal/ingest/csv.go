// Package ingest validates and parses the participant CSV upload.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Row is one participant line of the CSV, keeping its 1-based physical
// file line for error reporting.
type Row struct {
	Name string
	Line int
}

// MalformedCSVError marks a CSV whose shape invalidates the whole
// batch: wrong column count or unreadable encoding.
type MalformedCSVError struct {
	Line    int
	Columns int
	Reason  string
}

func (e *MalformedCSVError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("malformed CSV: %s", e.Reason)
	}
	return fmt.Sprintf("malformed CSV: expected 1 column, found %d at line %d", e.Columns, e.Line)
}

// MissingRequiredFieldError marks a row whose name field is empty. It
// fails that row only, never the batch.
type MissingRequiredFieldError struct {
	Line  int
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q at line %d", e.Field, e.Line)
}

// ParseParticipants reads a single-column participant list. Whether the
// first line is a header is declared by the caller, never sniffed; when
// hasHeader is true exactly the first line is skipped.
//
// A record with more than one column aborts parsing with a
// MalformedCSVError naming the detected count. Blank names are kept so
// the batch orchestrator can report them per row.
func ParseParticipants(r io.Reader, hasHeader bool) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV input: %w", err)
	}

	if !utf8.Valid(data) {
		return nil, &MalformedCSVError{Reason: "input is not valid UTF-8"}
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	recordIndex := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedCSVError{Reason: err.Error()}
		}
		recordIndex++

		// FieldPos reports the physical file line, which stays correct
		// when a quoted field spans multiple lines.
		line, _ := reader.FieldPos(0)

		if len(record) != 1 {
			return nil, &MalformedCSVError{Line: line, Columns: len(record)}
		}

		if hasHeader && recordIndex == 1 {
			continue
		}

		rows = append(rows, Row{
			Name: strings.TrimSpace(record[0]),
			Line: line,
		})
	}

	return rows, nil
}
