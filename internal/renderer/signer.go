package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"

	"github.com/nepemufsc/nepemcert-api/common"
)

// Signer applies the institutional digital signature to generated
// PDFs. When signing is disabled it passes documents through unchanged.
type Signer struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewSigner() (*Signer, error) {
	if common.Config.SigningEnabled == nil || !*common.Config.SigningEnabled {
		slog.Info("PDF signing disabled in configuration")
		return &Signer{enabled: false}, nil
	}

	if common.Config.SigningCertPath == nil || common.Config.SigningKeyPath == nil {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(*common.Config.SigningCertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", *common.Config.SigningCertPath, err)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", *common.Config.SigningCertPath)
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyPEM, err := os.ReadFile(*common.Config.SigningKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", *common.Config.SigningKeyPath, err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", *common.Config.SigningKeyPath)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	slog.Info("PDF signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &Signer{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func (s *Signer) IsEnabled() bool {
	return s.enabled
}

// SignPDF signs a generated certificate. Signing failures degrade to
// the unsigned document so one bad signature never fails a batch row.
func (s *Signer) SignPDF(pdfBytes []byte, eventID, participantID string) ([]byte, error) {
	if !s.enabled || s.privateKey == nil || s.certificate == nil {
		return pdfBytes, nil
	}

	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "NEPEM UFSC",
				Location: "Florianópolis, SC",
				Reason:   fmt.Sprintf("Emissão de certificado para o participante %s", participantID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	// The signing library panics on some malformed inputs.
	var signingError error
	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic during PDF signing",
					"panic", r,
					"event_id", eventID,
					"participant_id", participantID)
			}
		}()

		pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if err != nil {
			signingError = err
			return
		}

		inputReader.Seek(0, io.SeekStart)
		signingError = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingError != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF",
			"event_id", eventID,
			"participant_id", participantID,
			"error", signingError)
		return pdfBytes, nil
	}

	return outputBuffer.Bytes(), nil
}
