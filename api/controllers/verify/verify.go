package verify_controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/verificationModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Verify is the public certificate lookup. It answers with the issued
// record and never leaks whether a nearby code exists.
func Verify(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return response.SendFailed(c, "Verification code is required")
	}

	record, queryErr := verificationModel.GetByCode(code)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if record == nil {
		return response.SendFailed(c, "Certificate not found")
	}

	return response.SendSuccess(c, "Certificate verified successfully", fiber.Map{
		"code":             record.Code,
		"participant_name": record.ParticipantName,
		"event_name":       record.EventName,
		"emission_date":    record.EmissionDate,
	})
}
