package generation_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/batchModel"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Status reports the batch run state plus the per-participant outcomes.
func (gc *GenerationController) Status(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	batch, queryErr := batchModel.GetById(c.Params("batchId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if batch == nil {
		return response.SendFailed(c, "Batch not found")
	}

	event, eventErr := eventModel.GetById(batch.EventID)
	if eventErr != nil {
		return response.SendInternalError(c, eventErr)
	}
	if event == nil || event.UserID != userId {
		return response.SendUnauthorized(c, "Batch belongs to another user")
	}

	participants, participantsErr := gc.participantRepo.GetByEvent(batch.EventID)
	if participantsErr != nil {
		return response.SendInternalError(c, participantsErr)
	}

	return response.SendSuccess(c, "Batch status retrieved successfully", fiber.Map{
		"batch":        batch,
		"participants": participants,
	})
}

// ListByEvent returns the event's batch runs, newest first.
func (gc *GenerationController) ListByEvent(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")

	event, eventErr := eventModel.GetById(eventId)
	if eventErr != nil {
		return response.SendInternalError(c, eventErr)
	}
	if event == nil {
		return response.SendFailed(c, "Event not found")
	}
	if event.UserID != userId {
		return response.SendUnauthorized(c, "Event belongs to another user")
	}

	batches, batchesErr := batchModel.GetByEvent(eventId)
	if batchesErr != nil {
		return response.SendInternalError(c, batchesErr)
	}

	return response.SendSuccess(c, "Batch runs retrieved successfully", batches)
}
