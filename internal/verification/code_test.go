package verification_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/nepemufsc/nepemcert-api/internal/verification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ShapeAndAlphabet(t *testing.T) {
	code, err := verification.Generate("Maria Silva", "Semana Acadêmica", "12/03/2026", "")
	require.NoError(t, err)

	assert.Len(t, code, verification.CodeLength)
	for _, r := range code {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", string(r))
	}
}

func TestGenerate_FreshEntropyPerCall(t *testing.T) {
	first, err := verification.Generate("Maria Silva", "Evento", "12/03/2026", "")
	require.NoError(t, err)
	second, err := verification.Generate("Maria Silva", "Evento", "12/03/2026", "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "re-issuing may legitimately produce a new code")
}

func TestIssuer_PairwiseDistinctWithinBatch(t *testing.T) {
	issuer := verification.NewIssuer("")

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		rowKey := fmt.Sprintf("row-%d", i)
		code, err := issuer.Issue(rowKey, fmt.Sprintf("Participante %d", i), "Evento", "12/03/2026")
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}

	assert.Equal(t, 2000, issuer.IssuedCount())
}

func TestIssuer_IdempotentRetry(t *testing.T) {
	issuer := verification.NewIssuer("")

	first, err := issuer.Issue("row-1", "Maria Silva", "Evento", "12/03/2026")
	require.NoError(t, err)

	retry, err := issuer.Issue("row-1", "Maria Silva", "Evento", "12/03/2026")
	require.NoError(t, err)

	assert.Equal(t, first, retry)
	assert.Equal(t, 1, issuer.IssuedCount())
}

func TestIssuer_ConcurrentIssuanceStaysDistinct(t *testing.T) {
	issuer := verification.NewIssuer("")

	const workers = 8
	const perWorker = 250

	var wg sync.WaitGroup
	codes := make(chan string, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				code, err := issuer.Issue(fmt.Sprintf("w%d-r%d", w, i), "Nome", "Evento", "12/03/2026")
				if err != nil {
					t.Error(err)
					return
				}
				codes <- code
			}
		}(w)
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool)
	for code := range codes {
		assert.False(t, seen[code])
		seen[code] = true
	}
	assert.Len(t, seen, workers*perWorker)
}

func TestVerifyURL(t *testing.T) {
	url := verification.VerifyURL("https://nepemufsc.com/", "ABCD2345EFGH")
	assert.Equal(t, "https://nepemufsc.com/verificar-certificados?codigo=ABCD2345EFGH", url)
}

func TestQRCodeDataURI(t *testing.T) {
	uri, err := verification.QRCodeDataURI("https://nepemufsc.com/verificar-certificados?codigo=ABCD2345EFGH")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Greater(t, len(uri), len("data:image/png;base64,"))
}

func TestCodeExhaustedError_Message(t *testing.T) {
	err := &verification.CodeExhaustedError{Attempts: 5}
	assert.Contains(t, err.Error(), "5 attempts")
}
