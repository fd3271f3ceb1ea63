package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []Row {
	return []Row{
		{Line: 1, Name: "Ana Souza", Code: "ABCDEFGH2345", Status: "success", CertificateURL: "https://storage.test/cert/ana.pdf"},
		{Line: 2, Name: "Beto Lima", Status: "failed", Reason: "render failed: tab crashed"},
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Workshop de Go", sampleRows()))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Certificados")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Linha", "Nome", "Código", "Situação", "Motivo", "Certificado"}, rows[0])
	assert.Equal(t, "Ana Souza", rows[1][1])
	assert.Equal(t, "ABCDEFGH2345", rows[1][2])
	assert.Equal(t, "failed", rows[2][3])
	assert.Equal(t, "render failed: tab crashed", rows[2][4])
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "", nil))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Certificados")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Nome", records[0][1])
	assert.Equal(t, "2", records[2][0])
	assert.Equal(t, "Beto Lima", records[2][1])
}
