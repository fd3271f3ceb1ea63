package generation_controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/batchModel"
	"github.com/nepemufsc/nepemcert-api/api/model/eventModel"
	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/api/model/userModel"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// batchTimeout bounds a whole batch run, not individual rows.
const batchTimeout = 30 * time.Minute

// Start launches an asynchronous certificate batch for the event and
// returns the batch run id. One running batch per event at a time.
func (gc *GenerationController) Start(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	eventId := c.Params("eventId")

	event, queryErr := eventModel.GetById(eventId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if event == nil {
		return response.SendFailed(c, "Event not found")
	}
	if event.UserID != userId {
		return response.SendUnauthorized(c, "Event belongs to another user")
	}

	running, runningErr := batchModel.HasRunning(eventId)
	if runningErr != nil {
		return response.SendInternalError(c, runningErr)
	}
	if running {
		return response.SendFailed(c, "A generation batch is already running for this event")
	}

	tmpl, templateErr := templateModel.GetById(event.TemplateID)
	if templateErr != nil {
		return response.SendInternalError(c, templateErr)
	}
	if tmpl == nil {
		return response.SendFailed(c, "Event template not found")
	}

	theme := placeholder.Set{}
	if event.ThemeName != "" {
		loaded, themeErr := parameterModel.GetTheme(event.ThemeName)
		if themeErr != nil {
			return response.SendFailed(c, themeErr.Error())
		}
		theme = loaded
	}

	defaults, defaultsErr := parameterModel.GetDefaults()
	if defaultsErr != nil {
		return response.SendInternalError(c, defaultsErr)
	}

	institutional, institutionalErr := parameterModel.GetInstitutional()
	if institutionalErr != nil {
		return response.SendInternalError(c, institutionalErr)
	}

	participants, participantsErr := gc.participantRepo.GetByEvent(eventId)
	if participantsErr != nil {
		return response.SendInternalError(c, participantsErr)
	}
	if len(participants) == 0 {
		return response.SendFailed(c, "Event has no participants")
	}

	owner, ownerErr := userModel.GetById(userId)
	if ownerErr != nil {
		return response.SendInternalError(c, ownerErr)
	}

	batch, createErr := batchModel.Create(eventId, int32(len(participants)))
	if createErr != nil {
		return response.SendInternalError(c, createErr)
	}

	if resetErr := gc.participantRepo.ResetStatuses(eventId); resetErr != nil {
		return response.SendInternalError(c, resetErr)
	}

	rows := make([]renderer.Row, len(participants))
	for i, participant := range participants {
		rows[i] = renderer.Row{
			ParticipantID: participant.ID,
			Name:          participant.Name,
			Line:          participant.Line,
		}
	}

	input := renderer.BatchInput{
		BatchID:      batch.ID,
		TemplateHTML: tmpl.HTML,
		Event: renderer.EventInfo{
			ID:       event.ID,
			Name:     event.Name,
			Local:    event.Local,
			City:     event.City,
			Date:     event.EventDate,
			Workload: event.Workload,
		},
		Theme:         theme,
		Defaults:      defaults,
		Institutional: institutional,
		Rows:          rows,
	}
	if owner != nil {
		input.OwnerEmail = owner.Email
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
		defer cancel()

		if _, runErr := gc.pipeline.Run(ctx, input); runErr != nil {
			slog.Error("Batch run failed", "error", runErr, "batch_id", batch.ID, "event_id", eventId)
		}
	}()

	slog.Info("Batch run started", "batch_id", batch.ID, "event_id", eventId, "participants", len(participants))

	return response.SendSuccess(c, "Certificate generation started", fiber.Map{
		"batch_id": batch.ID,
		"total":    len(participants),
	})
}
