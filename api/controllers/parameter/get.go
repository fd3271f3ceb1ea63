package parameter_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func Get(c *fiber.Ctx) error {
	doc, queryErr := parameterModel.Get()
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Parameters retrieved successfully", fiber.Map{
		"default_placeholders":       doc.DefaultPlaceholders,
		"institutional_placeholders": doc.InstitutionalPlaceholders,
		"themes":                     doc.ThemePlaceholders,
	})
}
