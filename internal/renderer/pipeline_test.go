package renderer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

type MockRenderer struct {
	mu         sync.Mutex
	calls      []Meta
	RenderFunc func(ctx context.Context, html string, meta Meta) ([]byte, error)
}

func (m *MockRenderer) RenderPDF(ctx context.Context, html string, meta Meta) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, meta)
	m.mu.Unlock()
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, html, meta)
	}
	return []byte("%PDF-fake " + meta.ParticipantID), nil
}

func (m *MockRenderer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type MockStorage struct {
	mu         sync.Mutex
	Objects    map[string][]byte
	UploadFunc func(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

func (m *MockStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, objectName, data, contentType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Objects == nil {
		m.Objects = make(map[string][]byte)
	}
	m.Objects[objectName] = data
	return "https://storage.test/certificates/" + objectName, nil
}

type MockResultStore struct {
	mu             sync.Mutex
	Done           map[string]string
	Failed         map[string]string
	Verifications  []*model.VerificationRecord
	ArchiveEventID string
	ArchiveURL     string
	FinalBatchID   string
	FinalSucceeded int32
	FinalFailed    int32
	FinalReason    string
}

func NewMockResultStore() *MockResultStore {
	return &MockResultStore{
		Done:   make(map[string]string),
		Failed: make(map[string]string),
	}
}

func (m *MockResultStore) MarkParticipantDone(participantID, code, certificateURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Done[participantID] = code
	return nil
}

func (m *MockResultStore) MarkParticipantFailed(participantID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed[participantID] = reason
	return nil
}

func (m *MockResultStore) SaveVerification(record *model.VerificationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Verifications = append(m.Verifications, record)
	return nil
}

func (m *MockResultStore) SetEventArchive(eventID, archiveURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArchiveEventID = eventID
	m.ArchiveURL = archiveURL
	return nil
}

func (m *MockResultStore) FinalizeBatch(batchID string, succeeded, failed int32, archiveURL, failReason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FinalBatchID = batchID
	m.FinalSucceeded = succeeded
	m.FinalFailed = failed
	m.FinalReason = failReason
	return nil
}

func testInput(rows int) BatchInput {
	in := BatchInput{
		BatchID: "batch-1",
		Event: EventInfo{
			ID:       "event-1",
			Name:     "Workshop de Go",
			Local:    "Auditório CCB",
			City:     "Florianópolis",
			Date:     "15/03/2026",
			Workload: "8 horas",
		},
		TemplateHTML: `<html><head></head><body><p>{{ nome }} - {{ codigo_verificacao }}</p></body></html>`,
		Theme:        placeholder.Set{"heading_color": "#123456"},
	}
	for i := 0; i < rows; i++ {
		in.Rows = append(in.Rows, Row{
			ParticipantID: fmt.Sprintf("p-%d", i+1),
			Name:          fmt.Sprintf("Participante %d", i+1),
			Line:          int32(i + 1),
		})
	}
	return in
}

func testPipeline(r Renderer, s Storage, store ResultStore) *Pipeline {
	return &Pipeline{
		Renderer:   r,
		Storage:    s,
		Store:      store,
		Workers:    4,
		VerifyHost: "https://certificados.test",
		Salt:       "NEPEMCERT",
	}
}

func TestPipelineRunAllSucceed(t *testing.T) {
	rendererMock := &MockRenderer{}
	storage := &MockStorage{}
	store := NewMockResultStore()
	pipeline := testPipeline(rendererMock, storage, store)

	summary, err := pipeline.Run(context.Background(), testInput(5))

	require.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 5, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.NotEmpty(t, summary.ArchiveURL)

	assert.Len(t, store.Done, 5)
	assert.Empty(t, store.Failed)
	assert.Len(t, store.Verifications, 5)
	assert.Equal(t, "event-1", store.ArchiveEventID)
	assert.Equal(t, "batch-1", store.FinalBatchID)
	assert.Equal(t, int32(5), store.FinalSucceeded)

	codes := make(map[string]bool)
	for _, record := range store.Verifications {
		assert.Len(t, record.Code, 12)
		assert.Contains(t, record.VerifyURL, record.Code)
		codes[record.Code] = true
	}
	assert.Len(t, codes, 5)
}

func TestPipelineRunOneRowFails(t *testing.T) {
	rendererMock := &MockRenderer{
		RenderFunc: func(ctx context.Context, html string, meta Meta) ([]byte, error) {
			if meta.ParticipantID == "p-2" {
				return nil, errors.New("tab crashed")
			}
			return []byte("%PDF-fake"), nil
		},
	}
	storage := &MockStorage{}
	store := NewMockResultStore()
	pipeline := testPipeline(rendererMock, storage, store)

	summary, err := pipeline.Run(context.Background(), testInput(3))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, store.Failed["p-2"], "render failed")
	assert.Len(t, store.Done, 2)
	assert.Equal(t, int32(1), store.FinalFailed)
	assert.NotEmpty(t, summary.ArchiveURL)
}

func TestPipelineRunBlankNameFailsRowOnly(t *testing.T) {
	rendererMock := &MockRenderer{}
	storage := &MockStorage{}
	store := NewMockResultStore()
	pipeline := testPipeline(rendererMock, storage, store)

	in := testInput(3)
	in.Rows[1].Name = "   "

	summary, err := pipeline.Run(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, store.Failed["p-2"], `missing required field "nome"`)
	assert.Contains(t, store.Failed["p-2"], "line 2")
	assert.Len(t, store.Done, 2)
	assert.Len(t, store.Verifications, 2)
	assert.Equal(t, 2, rendererMock.CallCount())
}

func TestPipelineRunRetriesRenderOnce(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	rendererMock := &MockRenderer{
		RenderFunc: func(ctx context.Context, html string, meta Meta) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			attempts++
			if attempts == 1 {
				return nil, errors.New("transient failure")
			}
			return []byte("%PDF-fake"), nil
		},
	}
	storage := &MockStorage{}
	store := NewMockResultStore()
	pipeline := testPipeline(rendererMock, storage, store)

	summary, err := pipeline.Run(context.Background(), testInput(1))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, attempts)
	assert.Len(t, store.Verifications, 1)
}

func TestPipelineRunInvalidThemeIsBatchFatal(t *testing.T) {
	rendererMock := &MockRenderer{}
	store := NewMockResultStore()
	pipeline := testPipeline(rendererMock, &MockStorage{}, store)

	in := testInput(3)
	in.Theme = placeholder.Set{"title_font_size": "60px"}

	summary, err := pipeline.Run(context.Background(), in)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Zero(t, rendererMock.CallCount())
	assert.Contains(t, store.FinalReason, "invalid theme")
}

func TestPipelineRunEmptyTemplateIsBatchFatal(t *testing.T) {
	store := NewMockResultStore()
	pipeline := testPipeline(&MockRenderer{}, &MockStorage{}, store)

	in := testInput(2)
	in.TemplateHTML = "   "

	_, err := pipeline.Run(context.Background(), in)

	assert.Error(t, err)
	assert.Contains(t, store.FinalReason, "no template content")
}

func TestPipelineRunNoRowsIsBatchFatal(t *testing.T) {
	store := NewMockResultStore()
	pipeline := testPipeline(&MockRenderer{}, &MockStorage{}, store)

	_, err := pipeline.Run(context.Background(), testInput(0))

	assert.Error(t, err)
	assert.Contains(t, store.FinalReason, "no participants")
}

func TestPipelineRunUploadFailureFailsRow(t *testing.T) {
	storage := &MockStorage{
		UploadFunc: func(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	store := NewMockResultStore()
	pipeline := testPipeline(&MockRenderer{}, storage, store)

	summary, err := pipeline.Run(context.Background(), testInput(2))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Failed)
	assert.Empty(t, summary.ArchiveURL)
	assert.Contains(t, store.Failed["p-1"], "upload failed")
}

func TestPipelineRunNotifiesOwner(t *testing.T) {
	var recipient, eventName string
	var succeeded, failed int
	pipeline := testPipeline(&MockRenderer{}, &MockStorage{}, NewMockResultStore())
	pipeline.Notify = func(r, e string, s, f int, archiveURL string) error {
		recipient, eventName, succeeded, failed = r, e, s, f
		return nil
	}

	in := testInput(2)
	in.OwnerEmail = "coordenacao@ufsc.br"

	_, err := pipeline.Run(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "coordenacao@ufsc.br", recipient)
	assert.Equal(t, "Workshop de Go", eventName)
	assert.Equal(t, 2, succeeded)
	assert.Zero(t, failed)
}

func TestPipelineRunManyRowsConcurrently(t *testing.T) {
	storage := &MockStorage{}
	store := NewMockResultStore()
	pipeline := testPipeline(&MockRenderer{}, storage, store)

	summary, err := pipeline.Run(context.Background(), testInput(50))

	require.NoError(t, err)
	assert.Equal(t, 50, summary.Succeeded)
	assert.Len(t, store.Verifications, 50)

	codes := make(map[string]bool)
	for _, record := range store.Verifications {
		codes[record.Code] = true
	}
	assert.Len(t, codes, 50)
}
