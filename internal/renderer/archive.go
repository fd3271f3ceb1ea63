package renderer

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/nepemufsc/nepemcert-api/common/util"
)

type ArchiveEntry struct {
	Name string
	Data []byte
}

// ArchiveEntryName builds the ZIP entry name for a participant's
// certificate.
func ArchiveEntryName(participantName string) string {
	slug := util.Slugify(participantName)
	if slug == "" {
		slug = "participante"
	}
	return fmt.Sprintf("certificado_%s.pdf", slug)
}

// BuildArchive packs the batch's successful certificates into an
// in-memory ZIP. Duplicate participant names get a numeric suffix so
// no entry is silently overwritten.
func BuildArchive(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	used := make(map[string]int)
	for _, entry := range entries {
		name := entry.Name
		used[name]++
		if count := used[name]; count > 1 {
			name = fmt.Sprintf("%s_%d.pdf", name[:len(name)-len(".pdf")], count)
		}

		zipFile, err := zipWriter.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create ZIP entry %s: %w", name, err)
		}
		if _, err := zipFile.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("failed to write ZIP entry %s: %w", name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close ZIP writer: %w", err)
	}

	return buf.Bytes(), nil
}
