package theme_controller

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Import stores a theme from an uploaded JSON file. The payload is
// schema-checked before the key allow-list pass.
func Import(c *fiber.Ctx) error {
	fileHeader, fileErr := c.FormFile("file")
	if fileErr != nil {
		return response.SendFailed(c, "No theme file provided")
	}

	name := c.FormValue("name")
	if name == "" {
		base := filepath.Base(fileHeader.Filename)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if strings.TrimSpace(name) == "" {
		return response.SendFailed(c, "Theme name is required")
	}

	file, openErr := fileHeader.Open()
	if openErr != nil {
		return response.SendInternalError(c, openErr)
	}
	defer file.Close()

	raw, readErr := io.ReadAll(file)
	if readErr != nil {
		return response.SendInternalError(c, readErr)
	}

	parsed, parseErr := placeholder.ParseThemeJSON(raw)
	if parseErr != nil {
		return response.SendFailed(c, parseErr.Error())
	}

	values := make(map[string]any, len(parsed))
	for key, value := range parsed {
		values[key] = value
	}

	theme, saveErr := parameterModel.SaveTheme(name, values)
	if saveErr != nil {
		if errors.Is(saveErr, parameterModel.ErrInvalidThemeName) {
			return response.SendFailed(c, saveErr.Error())
		}
		return response.SendInternalError(c, saveErr)
	}

	slog.Info("Theme imported", "theme", name, "file", fileHeader.Filename)

	return response.SendSuccess(c, "Theme imported successfully", fiber.Map{
		"name":   name,
		"values": theme,
	})
}
