package event_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func GetByUser(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	events, queryErr := eventModel.GetByUser(userId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Events retrieved successfully", events)
}

func GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	event, queryErr := eventModel.GetById(c.Params("eventId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if event == nil {
		return response.SendFailed(c, "Event not found")
	}
	if event.UserID != userId {
		return response.SendUnauthorized(c, "Event belongs to another user")
	}

	return response.SendSuccess(c, "Event retrieved successfully", event)
}
