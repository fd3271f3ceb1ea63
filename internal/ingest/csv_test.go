package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParticipants_SingleColumn(t *testing.T) {
	input := "Maria Silva\nJoão Santos\nAna Costa\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), false)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, ingest.Row{Name: "Maria Silva", Line: 1}, rows[0])
	assert.Equal(t, ingest.Row{Name: "João Santos", Line: 2}, rows[1])
	assert.Equal(t, ingest.Row{Name: "Ana Costa", Line: 3}, rows[2])
}

func TestParseParticipants_HeaderSkipsExactlyFirstLine(t *testing.T) {
	input := "nome\nMaria Silva\nJoão Santos\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), true)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Maria Silva", rows[0].Name)
	assert.Equal(t, 2, rows[0].Line, "line numbers count the header")
}

func TestParseParticipants_HeaderIsDeclaredNotSniffed(t *testing.T) {
	// First line looks like a header but the caller declared none, so
	// it must be treated as a participant.
	input := "nome\nMaria Silva\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), false)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "nome", rows[0].Name)
}

func TestParseParticipants_MultiColumnRejected(t *testing.T) {
	input := "Maria Silva,maria@example.com\nJoão Santos,joao@example.com\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), false)
	assert.Nil(t, rows)

	var csvErr *ingest.MalformedCSVError
	require.True(t, errors.As(err, &csvErr))
	assert.Equal(t, 2, csvErr.Columns)
	assert.Equal(t, 1, csvErr.Line)
	assert.Contains(t, csvErr.Error(), "found 2")
}

func TestParseParticipants_MultiColumnHeaderRejectedBeforeSkip(t *testing.T) {
	input := "nome,email\nMaria Silva\n"

	_, err := ingest.ParseParticipants(strings.NewReader(input), true)
	var csvErr *ingest.MalformedCSVError
	require.True(t, errors.As(err, &csvErr))
	assert.Equal(t, 2, csvErr.Columns)
}

func TestParseParticipants_InvalidEncodingRejected(t *testing.T) {
	input := string([]byte{0xff, 0xfe, 0x41})

	_, err := ingest.ParseParticipants(strings.NewReader(input), false)
	var csvErr *ingest.MalformedCSVError
	require.True(t, errors.As(err, &csvErr))
	assert.Contains(t, csvErr.Error(), "UTF-8")
}

func TestParseParticipants_BlankNamesAreKept(t *testing.T) {
	input := "Maria Silva\n\"\"\nAna Costa\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), false)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "", rows[1].Name)
	assert.Equal(t, 2, rows[1].Line)
}

func TestParseParticipants_QuotedNewlineKeepsFileLines(t *testing.T) {
	// The quoted record spans lines 1-2, so the next record sits on
	// physical line 3.
	input := "\"Maria\nSilva\"\nAna Costa\n"

	rows, err := ingest.ParseParticipants(strings.NewReader(input), false)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "Ana Costa", rows[1].Name)
	assert.Equal(t, 3, rows[1].Line)
}

func TestParseParticipants_EmptyFile(t *testing.T) {
	rows, err := ingest.ParseParticipants(strings.NewReader(""), false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMissingRequiredFieldError_Message(t *testing.T) {
	err := &ingest.MissingRequiredFieldError{Line: 4, Field: "nome"}
	assert.Equal(t, `missing required field "nome" at line 4`, err.Error())
}
