// Package report exports batch results as spreadsheets.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Row is one participant line of a batch report.
type Row struct {
	Line           int32
	Name           string
	Code           string
	Status         string
	Reason         string
	CertificateURL string
}

var reportHeader = []string{"Linha", "Nome", "Código", "Situação", "Motivo", "Certificado"}

const sheetName = "Certificados"

func rowValues(row Row) []string {
	return []string{
		strconv.Itoa(int(row.Line)),
		row.Name,
		row.Code,
		row.Status,
		row.Reason,
		row.CertificateURL,
	}
}

// WriteXLSX writes the batch report as a styled XLSX workbook.
func WriteXLSX(w io.Writer, eventName string, rows []Row) error {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", sheetName)

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2C3E50"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheetName, cell, col)
		file.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		for j, value := range rowValues(row) {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			file.SetCellValue(sheetName, cell, value)
		}
	}

	file.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	lastCell, _ := excelize.CoordinatesToCellName(len(reportHeader), len(rows)+1)
	file.AutoFilter(sheetName, "A1:"+lastCell, nil)

	file.SetColWidth(sheetName, "B", "B", 32)
	file.SetColWidth(sheetName, "C", "C", 16)
	file.SetColWidth(sheetName, "E", "F", 40)

	if eventName != "" {
		file.SetDocProps(&excelize.DocProperties{Title: eventName})
	}

	return file.Write(w)
}

// WriteCSV writes the batch report as plain CSV with a header row.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(rowValues(row)); err != nil {
			return fmt.Errorf("failed to write report row %d: %w", row.Line, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
