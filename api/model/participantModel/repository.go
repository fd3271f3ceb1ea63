package participantModel

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
	"github.com/nepemufsc/nepemcert-api/type/shared/query"
)

// ParticipantRepository handles participant rows for an event.
type ParticipantRepository struct {
	q *query.Query
}

func NewParticipantRepository(q *query.Query) *ParticipantRepository {
	return &ParticipantRepository{q: q}
}

// AddParticipants stores the parsed CSV rows as pending participants.
func (r *ParticipantRepository) AddParticipants(eventId string, rows []ingest.Row) ([]*model.Participant, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no participant rows to add")
	}

	participants := make([]*model.Participant, 0, len(rows))
	for _, row := range rows {
		participants = append(participants, &model.Participant{
			EventID: eventId,
			Name:    row.Name,
			Line:    int32(row.Line),
			Status:  "pending",
		})
	}

	if err := r.q.Participant.CreateInBatches(participants, 500); err != nil {
		slog.Error("Participant AddParticipants", "error", err, "event_id", eventId, "rows", len(rows))
		return nil, err
	}

	slog.Info("Participant AddParticipants", "event_id", eventId, "created", len(participants))
	return participants, nil
}

func (r *ParticipantRepository) GetByEvent(eventId string) ([]*model.Participant, error) {
	participants, queryErr := r.q.Participant.
		Where(r.q.Participant.EventID.Eq(eventId)).
		Order(r.q.Participant.Line).
		Find()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Participant GetByEvent", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return participants, nil
}

func (r *ParticipantRepository) GetById(participantId string) (*model.Participant, error) {
	participant, queryErr := r.q.Participant.
		Where(r.q.Participant.ID.Eq(participantId)).
		First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Participant GetById", "error", queryErr, "participant_id", participantId)
		return nil, queryErr
	}

	return participant, nil
}

func (r *ParticipantRepository) DeleteByEvent(eventId string) (int64, error) {
	result, deleteErr := r.q.Participant.
		Where(r.q.Participant.EventID.Eq(eventId)).
		Delete()

	if deleteErr != nil {
		slog.Error("Participant DeleteByEvent", "error", deleteErr, "event_id", eventId)
		return 0, deleteErr
	}

	return result.RowsAffected, nil
}

func (r *ParticipantRepository) DeleteById(participantId string) error {
	_, deleteErr := r.q.Participant.
		Where(r.q.Participant.ID.Eq(participantId)).
		Delete()

	if deleteErr != nil {
		slog.Error("Participant DeleteById", "error", deleteErr, "participant_id", participantId)
		return deleteErr
	}

	return nil
}

// ResetStatuses puts an event's participants back to pending before a
// new batch run.
func (r *ParticipantRepository) ResetStatuses(eventId string) error {
	_, updateErr := r.q.Participant.
		Where(r.q.Participant.EventID.Eq(eventId)).
		Updates(map[string]any{
			"status":          "pending",
			"fail_reason":     "",
			"code":            "",
			"certificate_url": "",
		})

	if updateErr != nil {
		slog.Error("Participant ResetStatuses", "error", updateErr, "event_id", eventId)
		return updateErr
	}

	return nil
}

func (r *ParticipantRepository) MarkDone(participantId string, code string, certificateURL string) error {
	_, updateErr := r.q.Participant.
		Where(r.q.Participant.ID.Eq(participantId)).
		Updates(map[string]any{
			"status":          "success",
			"fail_reason":     "",
			"code":            code,
			"certificate_url": certificateURL,
		})

	if updateErr != nil {
		slog.Error("Participant MarkDone", "error", updateErr, "participant_id", participantId)
		return updateErr
	}

	return nil
}

func (r *ParticipantRepository) MarkFailed(participantId string, reason string) error {
	_, updateErr := r.q.Participant.
		Where(r.q.Participant.ID.Eq(participantId)).
		Updates(map[string]any{
			"status":      "failed",
			"fail_reason": reason,
		})

	if updateErr != nil {
		slog.Error("Participant MarkFailed", "error", updateErr, "participant_id", participantId)
		return updateErr
	}

	return nil
}
