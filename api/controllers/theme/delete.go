package theme_controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func Delete(c *fiber.Ctx) error {
	name := themeName(c)

	if deleteErr := parameterModel.DeleteTheme(name); deleteErr != nil {
		if errors.Is(deleteErr, parameterModel.ErrPredefinedTheme) || errors.Is(deleteErr, parameterModel.ErrThemeNotFound) {
			return response.SendFailed(c, deleteErr.Error())
		}
		return response.SendInternalError(c, deleteErr)
	}

	return response.SendSuccess(c, "Theme deleted successfully")
}
