package file_controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	file_controller "github.com/nepemufsc/nepemcert-api/api/controllers/file"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

func TestFileController_PublicDownloadCertificate(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func() *participantModel.MockParticipantRepository
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "failed - participant not found",
			setupMock: func() *participantModel.MockParticipantRepository {
				mock := participantModel.NewMockParticipantRepository()
				mock.GetByIdFunc = func(participantId string) (*model.Participant, error) {
					return nil, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Certificate not found",
		},
		{
			name: "failed - certificate still pending",
			setupMock: func() *participantModel.MockParticipantRepository {
				mock := participantModel.NewMockParticipantRepository()
				mock.GetByIdFunc = func(participantId string) (*model.Participant, error) {
					return &model.Participant{
						ID:      participantId,
						EventID: "event-1",
						Name:    "Ana Costa",
						Status:  "pending",
					}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Certificate not available",
		},
		{
			name: "failed - generation failed for participant",
			setupMock: func() *participantModel.MockParticipantRepository {
				mock := participantModel.NewMockParticipantRepository()
				mock.GetByIdFunc = func(participantId string) (*model.Participant, error) {
					return &model.Participant{
						ID:         participantId,
						EventID:    "event-1",
						Name:       "Ana Costa",
						Status:     "failed",
						FailReason: "render failed",
					}, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
			wantMessage:    "Certificate not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			ctrl := file_controller.NewFileController(tt.setupMock())

			app.Get("/certificate/:participantId", ctrl.PublicDownloadCertificate)

			req := httptest.NewRequest("GET", "/certificate/participant-1", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}

			if resp.StatusCode != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, resp.StatusCode)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("Failed to read response body: %v", err)
			}

			var response map[string]any
			if err := json.Unmarshal(body, &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response["message"] != tt.wantMessage {
				t.Errorf("Expected message=%q, got %v", tt.wantMessage, response["message"])
			}
		})
	}
}
