package renderer

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveEntryName(t *testing.T) {
	assert.Equal(t, "certificado_joao-da-silva.pdf", ArchiveEntryName("João da Silva"))
	assert.Equal(t, "certificado_maria-jose.pdf", ArchiveEntryName("  Maria  José  "))
	assert.Equal(t, "certificado_participante.pdf", ArchiveEntryName(""))
}

func TestBuildArchive(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "certificado_ana.pdf", Data: []byte("pdf-ana")},
		{Name: "certificado_beto.pdf", Data: []byte("pdf-beto")},
	}

	zipBytes, err := BuildArchive(entries)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)
	assert.Equal(t, "certificado_ana.pdf", reader.File[0].Name)
	assert.Equal(t, "certificado_beto.pdf", reader.File[1].Name)
}

func TestBuildArchiveDuplicateNames(t *testing.T) {
	entries := []ArchiveEntry{
		{Name: "certificado_ana.pdf", Data: []byte("first")},
		{Name: "certificado_ana.pdf", Data: []byte("second")},
		{Name: "certificado_ana.pdf", Data: []byte("third")},
	}

	zipBytes, err := BuildArchive(entries)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	require.NoError(t, err)
	require.Len(t, reader.File, 3)
	assert.Equal(t, "certificado_ana.pdf", reader.File[0].Name)
	assert.Equal(t, "certificado_ana_2.pdf", reader.File[1].Name)
	assert.Equal(t, "certificado_ana_3.pdf", reader.File[2].Name)
}

func TestBuildArchiveEmpty(t *testing.T) {
	zipBytes, err := BuildArchive(nil)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}
