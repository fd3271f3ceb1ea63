package batchModel

import (
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/api/model/verificationModel"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

// PipelineStore wires the batch pipeline's persistence hooks to the
// participant, verification, event and batch run models.
type PipelineStore struct {
	Participants participantModel.IParticipantRepository
}

func (s *PipelineStore) MarkParticipantDone(participantId string, code string, certificateURL string) error {
	return s.Participants.MarkDone(participantId, code, certificateURL)
}

func (s *PipelineStore) MarkParticipantFailed(participantId string, reason string) error {
	return s.Participants.MarkFailed(participantId, reason)
}

func (s *PipelineStore) SaveVerification(record *model.VerificationRecord) error {
	return verificationModel.SaveRecord(record)
}

func (s *PipelineStore) SetEventArchive(eventId string, archiveURL string) error {
	return eventModel.SetArchiveURL(eventId, archiveURL)
}

func (s *PipelineStore) FinalizeBatch(batchId string, succeeded int32, failed int32, archiveURL string, failReason string) error {
	return Finalize(batchId, succeeded, failed, archiveURL, failReason)
}
