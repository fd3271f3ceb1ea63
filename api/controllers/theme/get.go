package theme_controller

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// themeName extracts the theme name path param. Theme names carry
// spaces and accents, so the segment arrives percent-encoded.
func themeName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func Get(c *fiber.Ctx) error {
	name := themeName(c)

	theme, queryErr := parameterModel.GetTheme(name)
	if queryErr != nil {
		if errors.Is(queryErr, parameterModel.ErrThemeNotFound) {
			return response.SendFailed(c, queryErr.Error())
		}
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Theme retrieved successfully", fiber.Map{
		"name":       name,
		"predefined": parameterModel.IsPredefined(name),
		"values":     theme,
	})
}
