package event_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func Update(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")

	body := new(payload.UpdateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

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

	if body.ThemeName != "" {
		if _, themeErr := parameterModel.GetTheme(body.ThemeName); themeErr != nil {
			return response.SendFailed(c, themeErr.Error())
		}
	}

	event, updateErr := eventModel.Update(eventId, *body)
	if updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	slog.Info("Event updated", "event_id", eventId, "user_id", userId)
	return response.SendSuccess(c, "Event updated successfully", event)
}
