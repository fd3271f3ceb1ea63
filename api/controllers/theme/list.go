package theme_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func List(c *fiber.Ctx) error {
	names, queryErr := parameterModel.ListThemes()
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	themes := make([]fiber.Map, len(names))
	for i, name := range names {
		themes[i] = fiber.Map{
			"name":       name,
			"predefined": parameterModel.IsPredefined(name),
		}
	}

	return response.SendSuccess(c, "Themes retrieved successfully", themes)
}
