package theme_controller

import (
	"errors"
	"log/slog"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Save validates and stores a theme. Saving over a predefined theme is
// allowed and shadows it; deletion is what stays protected.
func Save(c *fiber.Ctx) error {
	body := new(payload.SaveThemePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if validateErr := gut.Validate(body); validateErr != nil {
		return response.SendFailed(c, "Missing required fields")
	}

	theme, saveErr := parameterModel.SaveTheme(body.Name, body.Values)
	if saveErr != nil {
		var themeErr *placeholder.ThemeValidationError
		if errors.As(saveErr, &themeErr) || errors.Is(saveErr, parameterModel.ErrInvalidThemeName) {
			return response.SendFailed(c, saveErr.Error())
		}
		return response.SendInternalError(c, saveErr)
	}

	slog.Info("Theme saved via API", "theme", body.Name)

	return response.SendSuccess(c, "Theme saved successfully", fiber.Map{
		"name":   body.Name,
		"values": theme,
	})
}
