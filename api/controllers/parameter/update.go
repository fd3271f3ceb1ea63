package parameter_controller

import (
	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func UpdateDefaults(c *fiber.Ctx) error {
	body := new(payload.UpdateParameterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if validateErr := gut.Validate(body); validateErr != nil {
		return response.SendFailed(c, "Missing required fields")
	}

	if updateErr := parameterModel.UpdateDefaults(body.Values); updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	return response.SendSuccess(c, "Default placeholders updated successfully")
}

func UpdateInstitutional(c *fiber.Ctx) error {
	body := new(payload.UpdateParameterPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if validateErr := gut.Validate(body); validateErr != nil {
		return response.SendFailed(c, "Missing required fields")
	}

	if updateErr := parameterModel.UpdateInstitutional(body.Values); updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	return response.SendSuccess(c, "Institutional placeholders updated successfully")
}
