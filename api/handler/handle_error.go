package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/api/model/presetModel"
	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	// Domain errors are the caller's fault, not the server's.
	var csvErr *ingest.MalformedCSVError
	var themeErr *placeholder.ThemeValidationError
	switch {
	case errors.As(err, &csvErr), errors.As(err, &themeErr):
		return c.Status(fiber.StatusBadRequest).JSON(
			response.Error(err.Error()),
		)
	case errors.Is(err, parameterModel.ErrThemeNotFound), errors.Is(err, presetModel.ErrPresetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(
			response.Error(err.Error()),
		)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(
		response.Error(err.Error()),
	)
}
