package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/internal/template"
	"github.com/nepemufsc/nepemcert-api/internal/verification"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

// Storage uploads generated artifacts and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// ResultStore persists per-row outcomes and the final batch state.
type ResultStore interface {
	MarkParticipantDone(participantID, code, certificateURL string) error
	MarkParticipantFailed(participantID, reason string) error
	SaveVerification(record *model.VerificationRecord) error
	SetEventArchive(eventID, archiveURL string) error
	FinalizeBatch(batchID string, succeeded, failed int32, archiveURL, failReason string) error
}

// NotifyFunc sends the batch summary mail to the event owner.
type NotifyFunc func(recipient, eventName string, succeeded, failed int, archiveURL string) error

type EventInfo struct {
	ID       string
	Name     string
	Local    string
	City     string
	Date     string
	Workload string
}

type Row struct {
	ParticipantID string
	Name          string
	Line          int32
}

type BatchInput struct {
	BatchID       string
	Event         EventInfo
	TemplateHTML  string
	Theme         placeholder.Set
	Defaults      placeholder.Set
	Institutional placeholder.Set
	Rows          []Row
	OwnerEmail    string
}

type RowResult struct {
	ParticipantID  string
	Name           string
	Line           int32
	Code           string
	CertificateURL string
	FailReason     string
	pdf            []byte
}

func (r RowResult) Succeeded() bool {
	return r.FailReason == ""
}

type BatchSummary struct {
	Total      int
	Succeeded  int
	Failed     int
	ArchiveURL string
	Results    []RowResult
}

// Pipeline runs a certificate batch: one bounded worker pool over the
// participant rows, the code Issuer as the only shared mutable state.
type Pipeline struct {
	Renderer   Renderer
	Signer     *Signer
	Storage    Storage
	Store      ResultStore
	Notify     NotifyFunc
	Workers    int
	VerifyHost string
	Salt       string
}

// Run executes the batch. Preconditions fail the whole batch before any
// row is attempted; after that, one row's failure never aborts the
// others.
func (p *Pipeline) Run(ctx context.Context, in BatchInput) (*BatchSummary, error) {
	if err := placeholder.ValidateTheme(in.Theme); err != nil {
		return p.failBatch(in, fmt.Sprintf("invalid theme: %v", err))
	}
	if strings.TrimSpace(in.TemplateHTML) == "" {
		return p.failBatch(in, "event has no template content")
	}
	if len(in.Rows) == 0 {
		return p.failBatch(in, "event has no participants")
	}

	styledHTML := template.ApplyTheme(in.TemplateHTML, in.Theme)
	emissionDate := time.Now().Format("02/01/2006")
	issuer := verification.NewIssuer(p.Salt)

	workerCount := p.Workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if workerCount > len(in.Rows) {
		workerCount = len(in.Rows)
	}

	slog.Info("Starting certificate batch",
		"batch_id", in.BatchID,
		"event_id", in.Event.ID,
		"rows", len(in.Rows),
		"workers", workerCount)

	jobChan := make(chan Row, len(in.Rows))
	resultChan := make(chan RowResult, len(in.Rows))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobChan {
				resultChan <- p.renderRow(ctx, in, issuer, styledHTML, emissionDate, row)
			}
		}()
	}

	for _, row := range in.Rows {
		jobChan <- row
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	summary := &BatchSummary{Total: len(in.Rows)}
	var entries []ArchiveEntry

	for result := range resultChan {
		if result.Succeeded() {
			summary.Succeeded++
			entries = append(entries, ArchiveEntry{
				Name: ArchiveEntryName(result.Name),
				Data: result.pdf,
			})
			p.recordSuccess(in, emissionDate, result)
		} else {
			summary.Failed++
			slog.Warn("Certificate row failed",
				"batch_id", in.BatchID,
				"participant_id", result.ParticipantID,
				"line", result.Line,
				"reason", result.FailReason)
			if err := p.Store.MarkParticipantFailed(result.ParticipantID, result.FailReason); err != nil {
				slog.Error("Failed to record participant failure", "error", err, "participant_id", result.ParticipantID)
			}
		}
		result.pdf = nil
		summary.Results = append(summary.Results, result)
	}

	if summary.Succeeded > 0 {
		archiveURL, err := p.uploadArchive(ctx, in, entries)
		if err != nil {
			slog.Error("Failed to build batch archive", "error", err, "batch_id", in.BatchID)
		} else {
			summary.ArchiveURL = archiveURL
			if err := p.Store.SetEventArchive(in.Event.ID, archiveURL); err != nil {
				slog.Error("Failed to update event archive", "error", err, "event_id", in.Event.ID)
			}
		}
	}

	if err := p.Store.FinalizeBatch(in.BatchID, int32(summary.Succeeded), int32(summary.Failed), summary.ArchiveURL, ""); err != nil {
		slog.Error("Failed to finalize batch run", "error", err, "batch_id", in.BatchID)
	}

	if p.Notify != nil && in.OwnerEmail != "" {
		if err := p.Notify(in.OwnerEmail, in.Event.Name, summary.Succeeded, summary.Failed, summary.ArchiveURL); err != nil {
			slog.Warn("Failed to send batch summary mail", "error", err, "recipient", in.OwnerEmail)
		}
	}

	slog.Info("Certificate batch completed",
		"batch_id", in.BatchID,
		"total", summary.Total,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	return summary, nil
}

func (p *Pipeline) failBatch(in BatchInput, reason string) (*BatchSummary, error) {
	slog.Error("Certificate batch aborted", "batch_id", in.BatchID, "reason", reason)
	if err := p.Store.FinalizeBatch(in.BatchID, 0, 0, "", reason); err != nil {
		slog.Error("Failed to finalize aborted batch", "error", err, "batch_id", in.BatchID)
	}
	return nil, fmt.Errorf("batch aborted: %s", reason)
}

func (p *Pipeline) renderRow(ctx context.Context, in BatchInput, issuer *verification.Issuer, styledHTML, emissionDate string, row Row) RowResult {
	result := RowResult{
		ParticipantID: row.ParticipantID,
		Name:          row.Name,
		Line:          row.Line,
	}

	if strings.TrimSpace(row.Name) == "" {
		missingErr := &ingest.MissingRequiredFieldError{Line: int(row.Line), Field: "nome"}
		result.FailReason = missingErr.Error()
		return result
	}

	code, err := issuer.Issue(strconv.Itoa(int(row.Line)), row.Name, in.Event.Name, emissionDate)
	if err != nil {
		result.FailReason = fmt.Sprintf("code generation failed: %v", err)
		return result
	}
	result.Code = code

	verifyURL := verification.VerifyURL(p.VerifyHost, code)
	qrDataURI, err := verification.QRCodeDataURI(verifyURL)
	if err != nil {
		result.FailReason = fmt.Sprintf("QR code generation failed: %v", err)
		return result
	}

	rowSet := placeholder.Set{
		"nome":               row.Name,
		"evento":             in.Event.Name,
		"local":              in.Event.Local,
		"cidade":             in.Event.City,
		"data":               in.Event.Date,
		"carga_horaria":      in.Event.Workload,
		"data_emissao":       emissionDate,
		"codigo_verificacao": code,
		"url_verificacao":    verifyURL,
		"qrcode_base64":      qrDataURI,
	}

	resolved, err := placeholder.Resolve(in.Defaults, in.Institutional, in.Theme, rowSet)
	if err != nil {
		result.FailReason = fmt.Sprintf("placeholder resolution failed: %v", err)
		return result
	}

	html := template.Render(styledHTML, resolved)
	meta := Meta{
		EventID:       in.Event.ID,
		ParticipantID: row.ParticipantID,
		Fields:        resolved,
	}

	pdfBytes, err := p.Renderer.RenderPDF(ctx, html, meta)
	if err != nil {
		// One retry; the Issuer hands back the same code for the row.
		pdfBytes, err = p.Renderer.RenderPDF(ctx, html, meta)
		if err != nil {
			result.FailReason = fmt.Sprintf("render failed: %v", err)
			return result
		}
	}

	if p.Signer != nil && p.Signer.IsEnabled() {
		signed, err := p.Signer.SignPDF(pdfBytes, in.Event.ID, row.ParticipantID)
		if err == nil && len(signed) > 0 {
			pdfBytes = signed
		}
	}

	objectName := fmt.Sprintf("%s/certificado_%d_%s.pdf",
		in.Event.ID, time.Now().Unix(), strings.ReplaceAll(uuid.New().String(), "-", ""))

	url, err := p.Storage.Upload(ctx, objectName, pdfBytes, "application/pdf")
	if err != nil {
		result.FailReason = fmt.Sprintf("upload failed: %v", err)
		return result
	}

	result.CertificateURL = url
	result.pdf = pdfBytes
	return result
}

func (p *Pipeline) recordSuccess(in BatchInput, emissionDate string, result RowResult) {
	if err := p.Store.MarkParticipantDone(result.ParticipantID, result.Code, result.CertificateURL); err != nil {
		slog.Error("Failed to record participant success", "error", err, "participant_id", result.ParticipantID)
	}

	record := &model.VerificationRecord{
		ID:              uuid.New().String(),
		Code:            result.Code,
		ParticipantID:   result.ParticipantID,
		ParticipantName: result.Name,
		EventName:       in.Event.Name,
		EmissionDate:    emissionDate,
		VerifyURL:       verification.VerifyURL(p.VerifyHost, result.Code),
	}
	if err := p.Store.SaveVerification(record); err != nil {
		slog.Error("Failed to save verification record", "error", err, "code", result.Code)
	}
}

func (p *Pipeline) uploadArchive(ctx context.Context, in BatchInput, entries []ArchiveEntry) (string, error) {
	zipBytes, err := BuildArchive(entries)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/certificados_%d_%s.zip",
		in.Event.ID, time.Now().Unix(), strings.ReplaceAll(uuid.New().String(), "-", ""))

	return p.Storage.Upload(ctx, objectName, zipBytes, "application/zip")
}
