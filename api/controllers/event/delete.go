package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// EventController carries the participant repository so deleting an
// event also clears its participant rows.
type EventController struct {
	participantRepo participantModel.IParticipantRepository
}

func NewEventController(participantRepo participantModel.IParticipantRepository) *EventController {
	return &EventController{participantRepo: participantRepo}
}

func (ec *EventController) Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")

	existing, queryErr := eventModel.GetById(eventId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if existing == nil {
		return response.SendFailed(c, "Event not found")
	}
	if existing.UserID != userId {
		return response.SendUnauthorized(c, "Event belongs to another user")
	}

	removed, participantErr := ec.participantRepo.DeleteByEvent(eventId)
	if participantErr != nil {
		return response.SendInternalError(c, participantErr)
	}

	if deleteErr := eventModel.Delete(eventId); deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Event deleted", "event_id", eventId, "user_id", userId, "participants_removed", removed)
	return response.SendSuccess(c, "Event deleted successfully", fiber.Map{
		"participants_removed": removed,
	})
}
