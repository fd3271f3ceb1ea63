package template_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/internal/template"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// GetPlaceholders lists a template's tokens and renderer-compatibility
// warnings.
func GetPlaceholders(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	stored, queryErr := templateModel.GetById(c.Params("templateId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if stored == nil {
		return response.SendFailed(c, "Template not found")
	}
	if stored.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	placeholders := template.ExtractPlaceholders(stored.HTML)
	warnings := template.CheckCompatibility(stored.HTML)

	return response.SendSuccess(c, "Placeholders extracted successfully", fiber.Map{
		"placeholders": placeholders,
		"warnings":     warnings,
	})
}
