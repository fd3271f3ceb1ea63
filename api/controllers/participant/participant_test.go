package participant_controller_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	participant_controller "github.com/nepemufsc/nepemcert-api/api/controllers/participant"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

func TestParticipantController_Delete(t *testing.T) {
	tests := []struct {
		name           string
		setupContext   func(c *fiber.Ctx)
		setupMock      func() *participantModel.MockParticipantRepository
		wantStatusCode int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name: "failed - no user in context",
			setupContext: func(c *fiber.Ctx) {
				// Don't set user_id
			},
			setupMock: func() *participantModel.MockParticipantRepository {
				return participantModel.NewMockParticipantRepository()
			},
			wantStatusCode: fiber.StatusUnauthorized,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["success"] != false {
					t.Errorf("Expected success=false, got %v", response["success"])
				}
			},
		},
		{
			name: "failed - participant not found",
			setupContext: func(c *fiber.Ctx) {
				c.Locals("user_id", "user-1")
			},
			setupMock: func() *participantModel.MockParticipantRepository {
				mock := participantModel.NewMockParticipantRepository()
				mock.GetByIdFunc = func(participantId string) (*model.Participant, error) {
					return nil, nil
				}
				return mock
			},
			wantStatusCode: fiber.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["message"] != "Participant not found" {
					t.Errorf("Expected message='Participant not found', got %v", response["message"])
				}
			},
		},
		{
			name: "failed - database error",
			setupContext: func(c *fiber.Ctx) {
				c.Locals("user_id", "user-1")
			},
			setupMock: func() *participantModel.MockParticipantRepository {
				mock := participantModel.NewMockParticipantRepository()
				mock.GetByIdFunc = func(participantId string) (*model.Participant, error) {
					return nil, errors.New("database connection error")
				}
				return mock
			},
			wantStatusCode: fiber.StatusInternalServerError,
			checkResponse: func(t *testing.T, body []byte) {
				var response map[string]any
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response["success"] != false {
					t.Errorf("Expected success=false, got %v", response["success"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			mockRepo := tt.setupMock()

			ctrl := participant_controller.NewParticipantController(mockRepo)

			app.Delete("/participant/:participantId", func(c *fiber.Ctx) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				return ctrl.Delete(c)
			})

			req := httptest.NewRequest("DELETE", "/participant/participant-1", nil)
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

			if tt.checkResponse != nil {
				tt.checkResponse(t, body)
			}
		})
	}
}

func TestParticipantController_GetByEvent_NoUser(t *testing.T) {
	app := fiber.New()
	ctrl := participant_controller.NewParticipantController(participantModel.NewMockParticipantRepository())

	app.Get("/participant/:eventId", ctrl.GetByEvent)

	req := httptest.NewRequest("GET", "/participant/event-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}
