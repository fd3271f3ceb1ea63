package participant_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func (pc *ParticipantController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	participantId := c.Params("participantId")

	participant, queryErr := pc.participantRepo.GetById(participantId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if participant == nil {
		return response.SendFailed(c, "Participant not found")
	}

	event, eventErr := eventModel.GetById(participant.EventID)
	if eventErr != nil {
		return response.SendInternalError(c, eventErr)
	}
	if event == nil || event.UserID != userId {
		return response.SendUnauthorized(c, "Participant belongs to another user")
	}

	if deleteErr := pc.participantRepo.DeleteById(participantId); deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Participant deleted", "participant_id", participantId, "event_id", participant.EventID)

	return response.SendSuccess(c, "Participant deleted successfully")
}
