package preset_controller

import (
	"errors"
	"log/slog"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/presetModel"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Save upserts a generation preset under its slugified name.
func Save(c *fiber.Ctx) error {
	body := new(payload.SavePresetPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if validateErr := gut.Validate(body); validateErr != nil {
		return response.SendFailed(c, "Missing required fields")
	}

	preset, saveErr := presetModel.Save(*body)
	if saveErr != nil {
		return response.SendInternalError(c, saveErr)
	}

	slog.Info("Preset saved", "slug", preset.Slug)

	return response.SendSuccess(c, "Preset saved successfully", preset)
}

func Get(c *fiber.Ctx) error {
	preset, queryErr := presetModel.Get(c.Params("slug"))
	if queryErr != nil {
		if errors.Is(queryErr, presetModel.ErrPresetNotFound) {
			return response.SendFailed(c, queryErr.Error())
		}
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Preset retrieved successfully", preset)
}

func List(c *fiber.Ctx) error {
	presets, queryErr := presetModel.List()
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Presets retrieved successfully", presets)
}

func Delete(c *fiber.Ctx) error {
	if deleteErr := presetModel.Delete(c.Params("slug")); deleteErr != nil {
		if errors.Is(deleteErr, presetModel.ErrPresetNotFound) {
			return response.SendFailed(c, deleteErr.Error())
		}
		return response.SendInternalError(c, deleteErr)
	}

	return response.SendSuccess(c, "Preset deleted successfully")
}
