package renderer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
)

// NativeRenderer composes the certificate directly with gofpdf for
// environments without Chrome. It ignores the HTML and draws from the
// resolved placeholder fields, so themed templates lose custom markup
// but keep their colors and texts.
type NativeRenderer struct{}

func NewNativeRenderer() *NativeRenderer {
	return &NativeRenderer{}
}

func fieldValue(fields placeholder.Set, key, fallback string) string {
	if v := fields[key]; v != "" {
		return v
	}
	return fallback
}

func hexToRGB(hex string, fallback [3]int) (int, int, int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback[0], fallback[1], fallback[2]
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback[0], fallback[1], fallback[2]
	}
	return int(value >> 16 & 0xff), int(value >> 8 & 0xff), int(value & 0xff)
}

func (r *NativeRenderer) RenderPDF(ctx context.Context, html string, meta Meta) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := meta.Fields
	if fields == nil {
		fields = placeholder.Set{}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, pageHeight := pdf.GetPageSize()

	bgR, bgG, bgB := hexToRGB(fields["background_color"], [3]int{255, 255, 255})
	pdf.SetFillColor(bgR, bgG, bgB)
	pdf.Rect(0, 0, pageWidth, pageHeight, "F")

	borderR, borderG, borderB := hexToRGB(fields["border_color"], [3]int{204, 204, 204})
	pdf.SetDrawColor(borderR, borderG, borderB)
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, pageWidth-20, pageHeight-20, "D")

	headingR, headingG, headingB := hexToRGB(fieldValue(fields, "heading_color", "#2c3e50"), [3]int{44, 62, 80})
	textR, textG, textB := hexToRGB(fieldValue(fields, "text_color", "#333333"), [3]int{51, 51, 51})

	titleR, titleG, titleB := headingR, headingG, headingB
	if v := fields["title_color"]; v != "" {
		titleR, titleG, titleB = hexToRGB(v, [3]int{headingR, headingG, headingB})
	}
	pdf.SetTextColor(titleR, titleG, titleB)
	pdf.SetFont("Helvetica", "B", 36)
	pdf.SetY(30)
	pdf.CellFormat(pageWidth, 16, tr(fieldValue(fields, "title_text", "Certificado")), "", 1, "C", false, 0, "")

	pdf.SetTextColor(textR, textG, textB)
	pdf.SetFont("Helvetica", "", 16)
	pdf.SetY(60)
	pdf.CellFormat(pageWidth, 8, tr(fieldValue(fields, "intro_text", "Certificamos que")), "", 1, "C", false, 0, "")

	nameR, nameG, nameB := headingR, headingG, headingB
	if v := fields["name_color"]; v != "" {
		nameR, nameG, nameB = hexToRGB(v, [3]int{headingR, headingG, headingB})
	}
	pdf.SetTextColor(nameR, nameG, nameB)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetY(72)
	pdf.CellFormat(pageWidth, 14, tr(fields["nome"]), "", 1, "C", false, 0, "")

	pdf.SetTextColor(textR, textG, textB)
	pdf.SetFont("Helvetica", "", 16)
	pdf.SetY(90)
	pdf.CellFormat(pageWidth, 8, tr(fieldValue(fields, "participation_text", "participou do evento")), "", 1, "C", false, 0, "")

	eventR, eventG, eventB := headingR, headingG, headingB
	if v := fields["event_name_color"]; v != "" {
		eventR, eventG, eventB = hexToRGB(v, [3]int{headingR, headingG, headingB})
	}
	pdf.SetTextColor(eventR, eventG, eventB)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetY(100)
	pdf.CellFormat(pageWidth, 10, tr(fields["evento"]), "", 1, "C", false, 0, "")

	var details []string
	if v := fields["local"]; v != "" {
		details = append(details, v)
	}
	if v := fields["cidade"]; v != "" {
		details = append(details, v)
	}
	if v := fields["data"]; v != "" {
		details = append(details, v)
	}
	if v := fields["carga_horaria"]; v != "" {
		details = append(details, fmt.Sprintf("carga horária: %s", v))
	}
	pdf.SetTextColor(textR, textG, textB)
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetY(114)
	pdf.CellFormat(pageWidth, 7, tr(strings.Join(details, " - ")), "", 1, "C", false, 0, "")

	if v := fields["data_emissao"]; v != "" {
		pdf.SetY(126)
		pdf.CellFormat(pageWidth, 7, tr(fmt.Sprintf("Emitido em %s", v)), "", 1, "C", false, 0, "")
	}

	sigR, sigG, sigB := textR, textG, textB
	if v := fields["signature_color"]; v != "" {
		sigR, sigG, sigB = hexToRGB(v, [3]int{textR, textG, textB})
	}
	pdf.SetDrawColor(sigR, sigG, sigB)
	pdf.SetTextColor(sigR, sigG, sigB)
	pdf.Line(pageWidth/2-40, 160, pageWidth/2+40, 160)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetY(162)
	pdf.CellFormat(pageWidth, 6, tr("Coordenação"), "", 1, "C", false, 0, "")

	if code := fields["codigo_verificacao"]; code != "" {
		pdf.SetTextColor(textR, textG, textB)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetY(pageHeight - 22)
		footer := fmt.Sprintf("Código de verificação: %s", code)
		if url := fields["url_verificacao"]; url != "" {
			footer = fmt.Sprintf("%s - %s", footer, url)
		}
		pdf.CellFormat(pageWidth-50, 5, tr(footer), "", 1, "L", false, 0, "")
	}

	if err := r.drawQRCode(pdf, fields["qrcode_base64"], pageWidth, pageHeight); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("native render failed for participant %s: %w", meta.ParticipantID, err)
	}

	return buf.Bytes(), nil
}

func (r *NativeRenderer) drawQRCode(pdf *gofpdf.Fpdf, dataURI string, pageWidth, pageHeight float64) error {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		return nil
	}

	imageBytes, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	if err != nil {
		return fmt.Errorf("invalid QR code data: %w", err)
	}

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qrcode", options, bytes.NewReader(imageBytes))
	pdf.ImageOptions("qrcode", pageWidth-38, pageHeight-38, 24, 24, false, options, 0, "")

	return pdf.Error()
}
