package participantModel

import (
	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

// IParticipantRepository is the interface controllers depend on, so
// tests can swap in a mock.
type IParticipantRepository interface {
	AddParticipants(eventId string, rows []ingest.Row) ([]*model.Participant, error)
	GetByEvent(eventId string) ([]*model.Participant, error)
	GetById(participantId string) (*model.Participant, error)
	DeleteByEvent(eventId string) (int64, error)
	DeleteById(participantId string) error
	ResetStatuses(eventId string) error
	MarkDone(participantId string, code string, certificateURL string) error
	MarkFailed(participantId string, reason string) error
}

// MockParticipantRepository implements IParticipantRepository with
// overridable functions for testing.
type MockParticipantRepository struct {
	AddParticipantsFunc func(eventId string, rows []ingest.Row) ([]*model.Participant, error)
	GetByEventFunc      func(eventId string) ([]*model.Participant, error)
	GetByIdFunc         func(participantId string) (*model.Participant, error)
	DeleteByEventFunc   func(eventId string) (int64, error)
	DeleteByIdFunc      func(participantId string) error
	ResetStatusesFunc   func(eventId string) error
	MarkDoneFunc        func(participantId string, code string, certificateURL string) error
	MarkFailedFunc      func(participantId string, reason string) error
}

func NewMockParticipantRepository() *MockParticipantRepository {
	return &MockParticipantRepository{}
}

func (m *MockParticipantRepository) AddParticipants(eventId string, rows []ingest.Row) ([]*model.Participant, error) {
	if m.AddParticipantsFunc != nil {
		return m.AddParticipantsFunc(eventId, rows)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetByEvent(eventId string) ([]*model.Participant, error) {
	if m.GetByEventFunc != nil {
		return m.GetByEventFunc(eventId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) GetById(participantId string) (*model.Participant, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(participantId)
	}
	return nil, nil
}

func (m *MockParticipantRepository) DeleteByEvent(eventId string) (int64, error) {
	if m.DeleteByEventFunc != nil {
		return m.DeleteByEventFunc(eventId)
	}
	return 0, nil
}

func (m *MockParticipantRepository) DeleteById(participantId string) error {
	if m.DeleteByIdFunc != nil {
		return m.DeleteByIdFunc(participantId)
	}
	return nil
}

func (m *MockParticipantRepository) ResetStatuses(eventId string) error {
	if m.ResetStatusesFunc != nil {
		return m.ResetStatusesFunc(eventId)
	}
	return nil
}

func (m *MockParticipantRepository) MarkDone(participantId string, code string, certificateURL string) error {
	if m.MarkDoneFunc != nil {
		return m.MarkDoneFunc(participantId, code, certificateURL)
	}
	return nil
}

func (m *MockParticipantRepository) MarkFailed(participantId string, reason string) error {
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(participantId, reason)
	}
	return nil
}
