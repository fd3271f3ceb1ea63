package template_controller

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
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

	body := new(payload.CreateTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, fmt.Sprintf("Invalid Data type %s", util.GetValidationErrors(err)[0]))
	}

	template, createErr := templateModel.Create(*body, userId)
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	slog.Info("Template created", "template_id", template.ID, "user_id", userId)
	return response.SendSuccess(c, "Template created successfully", template)
}
