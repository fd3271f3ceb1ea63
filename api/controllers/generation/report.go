package generation_controller

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/batchModel"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/internal/report"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// Report streams the batch outcome as an XLSX or CSV download.
func (gc *GenerationController) Report(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	batch, queryErr := batchModel.GetById(c.Params("batchId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if batch == nil {
		return response.SendFailed(c, "Batch not found")
	}

	event, eventErr := eventModel.GetById(batch.EventID)
	if eventErr != nil {
		return response.SendInternalError(c, eventErr)
	}
	if event == nil || event.UserID != userId {
		return response.SendUnauthorized(c, "Batch belongs to another user")
	}

	participants, participantsErr := gc.participantRepo.GetByEvent(batch.EventID)
	if participantsErr != nil {
		return response.SendInternalError(c, participantsErr)
	}

	rows := make([]report.Row, len(participants))
	for i, participant := range participants {
		rows[i] = report.Row{
			Line:           participant.Line,
			Name:           participant.Name,
			Code:           participant.Code,
			Status:         participant.Status,
			Reason:         participant.FailReason,
			CertificateURL: participant.CertificateURL,
		}
	}

	slug := util.Slugify(event.Name)
	if slug == "" {
		slug = "evento"
	}

	var buf bytes.Buffer
	switch format := c.Query("format", "xlsx"); format {
	case "xlsx":
		if writeErr := report.WriteXLSX(&buf, event.Name, rows); writeErr != nil {
			return response.SendInternalError(c, writeErr)
		}
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="relatorio_%s.xlsx"`, slug))
	case "csv":
		if writeErr := report.WriteCSV(&buf, rows); writeErr != nil {
			return response.SendInternalError(c, writeErr)
		}
		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="relatorio_%s.csv"`, slug))
	default:
		return response.SendFailed(c, fmt.Sprintf("Unsupported report format: %s", format))
	}

	return c.Send(buf.Bytes())
}
