package participant_controller

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Upload ingests the event's participant CSV. The file replaces any
// previously uploaded list; a malformed file is rejected whole.
func (pc *ParticipantController) Upload(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")

	event, queryErr := eventModel.GetById(eventId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if event == nil {
		return response.SendFailed(c, "Event not found")
	}
	if event.UserID != userId {
		return response.SendUnauthorized(c, "Event belongs to another user")
	}

	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil {
		return response.SendFailed(c, "No CSV file provided")
	}

	hasHeader := c.FormValue("has_header") == "true"

	file, openErr := fileHeader.Open()
	if openErr != nil {
		return response.SendInternalError(c, openErr)
	}
	defer file.Close()

	rows, parseErr := ingest.ParseParticipants(file, hasHeader)
	if parseErr != nil {
		var csvErr *ingest.MalformedCSVError
		if errors.As(parseErr, &csvErr) {
			slog.Warn("Participant upload rejected", "event_id", eventId, "error", parseErr)
			return response.SendFailed(c, parseErr.Error())
		}
		return response.SendFailed(c, parseErr.Error())
	}

	if len(rows) == 0 {
		return response.SendFailed(c, "CSV file has no participant rows")
	}

	replaced, deleteErr := pc.participantRepo.DeleteByEvent(eventId)
	if deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	participants, addErr := pc.participantRepo.AddParticipants(eventId, rows)
	if addErr != nil {
		return response.SendInternalError(c, addErr)
	}

	slog.Info("Participants uploaded",
		"event_id", eventId,
		"added", len(participants),
		"replaced", replaced,
		"has_header", hasHeader)

	return response.SendSuccess(c, "Participants uploaded successfully", fiber.Map{
		"added":    len(participants),
		"replaced": replaced,
	})
}
