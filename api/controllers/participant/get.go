package participant_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func (pc *ParticipantController) GetByEvent(c *fiber.Ctx) error {
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

	participants, listErr := pc.participantRepo.GetByEvent(eventId)
	if listErr != nil {
		return response.SendInternalError(c, listErr)
	}

	return response.SendSuccess(c, "Participants retrieved successfully", participants)
}
