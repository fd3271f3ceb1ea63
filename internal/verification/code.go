// Package verification issues the short authenticity codes printed on
// certificates and the lookup URLs / QR codes built from them.
package verification

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// CodeLength is the length of issued verification codes. Codes use the
// base32 alphabet (A-Z, 2-7) so they can be read aloud and typed.
const CodeLength = 12

// maxAttempts bounds in-run collision retries before giving up.
const maxAttempts = 5

// DefaultSalt is mixed into the hash when no salt is configured.
const DefaultSalt = "NEPEMCERT"

// CodeExhaustedError is returned when collision retries are exhausted.
type CodeExhaustedError struct {
	Attempts int
}

func (e *CodeExhaustedError) Error() string {
	return fmt.Sprintf("verification code generation exhausted after %d attempts", e.Attempts)
}

// Generate produces one candidate code by hashing the certificate
// identity together with fresh entropy. Two calls with identical
// arguments yield different codes; uniqueness within a batch is
// enforced by the Issuer, not here.
func Generate(participantName, eventName, emissionDate, salt string) (string, error) {
	if salt == "" {
		salt = DefaultSalt
	}

	entropy := make([]byte, 8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	material := fmt.Sprintf("%s:%s:%s:%s:%d:%x:%s",
		salt,
		participantName,
		eventName,
		emissionDate,
		time.Now().UnixMicro(),
		entropy,
		uuid.New().String()[:8],
	)

	digest := sha256.Sum256([]byte(material))
	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(digest[:])

	return code[:CodeLength], nil
}

// Issuer guarantees code uniqueness within one batch run and idempotent
// retries per row. It is the single point of coordination for parallel
// render workers.
type Issuer struct {
	salt string

	mu     sync.Mutex
	issued map[string]bool   // codes handed out this run
	byRow  map[string]string // row key -> code, for idempotent retry
}

// NewIssuer creates a batch-scoped issuer. The salt feeds the code
// hash; pass the configured salt or empty for the default.
func NewIssuer(salt string) *Issuer {
	return &Issuer{
		salt:   salt,
		issued: make(map[string]bool),
		byRow:  make(map[string]string),
	}
}

// Issue returns the verification code for a row, generating it on first
// call and returning the same code on every retry within the run. An
// in-run collision triggers regeneration, bounded by maxAttempts.
func (i *Issuer) Issue(rowKey, participantName, eventName, emissionDate string) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if code, ok := i.byRow[rowKey]; ok {
		return code, nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := Generate(participantName, eventName, emissionDate, i.salt)
		if err != nil {
			return "", err
		}

		if i.issued[code] {
			continue
		}

		i.issued[code] = true
		i.byRow[rowKey] = code
		return code, nil
	}

	return "", &CodeExhaustedError{Attempts: maxAttempts}
}

// IssuedCount reports how many distinct codes this run has handed out.
func (i *Issuer) IssuedCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.issued)
}

// VerifyURL builds the published lookup URL for a code.
func VerifyURL(host, code string) string {
	return fmt.Sprintf("%s/verificar-certificados?codigo=%s", strings.TrimRight(host, "/"), code)
}

// QRCodeDataURI renders a URL as a PNG QR code wrapped in a base64 data
// URI, ready for an <img> src in the certificate template.
func QRCodeDataURI(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
