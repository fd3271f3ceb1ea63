package event_controller

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func Create(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	body := new(payload.CreateEventPayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, fmt.Sprintf("Invalid Data type %s", util.GetValidationErrors(err)[0]))
	}

	template, templateErr := templateModel.GetById(body.TemplateID)
	if templateErr != nil {
		return response.SendInternalError(c, templateErr)
	}
	if template == nil {
		return response.SendFailed(c, "Template not found")
	}
	if template.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	if body.ThemeName != "" {
		if _, themeErr := parameterModel.GetTheme(body.ThemeName); themeErr != nil {
			return response.SendFailed(c, themeErr.Error())
		}
	}

	event, createErr := eventModel.Create(*body, userId)
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	slog.Info("Event created", "event_id", event.ID, "user_id", userId)
	return response.SendSuccess(c, "Event created successfully", event)
}
