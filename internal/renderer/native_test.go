package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/internal/verification"
)

func TestNativeRendererProducesPDF(t *testing.T) {
	qrDataURI, err := verification.QRCodeDataURI("https://certificados.test/verificar-certificados?codigo=ABCDEFGH2345")
	require.NoError(t, err)

	r := NewNativeRenderer()
	pdfBytes, err := r.RenderPDF(context.Background(), "", Meta{
		EventID:       "event-1",
		ParticipantID: "p-1",
		Fields: placeholder.Set{
			"nome":               "João da Silva",
			"evento":             "Semana Acadêmica",
			"local":              "Auditório CCB",
			"cidade":             "Florianópolis",
			"data":               "15/03/2026",
			"carga_horaria":      "20 horas",
			"data_emissao":       "20/03/2026",
			"codigo_verificacao": "ABCDEFGH2345",
			"url_verificacao":    "https://certificados.test/verificar-certificados?codigo=ABCDEFGH2345",
			"qrcode_base64":      qrDataURI,
			"heading_color":      "#8e44ad",
			"background_color":   "#f8f8ff",
		},
	})

	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 1000)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestNativeRendererEmptyFields(t *testing.T) {
	r := NewNativeRenderer()
	pdfBytes, err := r.RenderPDF(context.Background(), "", Meta{ParticipantID: "p-1"})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestNativeRendererCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewNativeRenderer()
	_, err := r.RenderPDF(ctx, "", Meta{ParticipantID: "p-1"})

	assert.Error(t, err)
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#2c3e50", 44, 62, 80},
		{"2c3e50", 44, 62, 80},
		{"#fff", 255, 255, 255},
		{"", 1, 2, 3},
		{"not-a-color", 1, 2, 3},
	}

	for _, test := range tests {
		r, g, b := hexToRGB(test.hex, [3]int{1, 2, 3})
		assert.Equal(t, []int{test.r, test.g, test.b}, []int{r, g, b}, test.hex)
	}
}
