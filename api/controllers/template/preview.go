package template_controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
	"github.com/nepemufsc/nepemcert-api/internal/template"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// TemplateController carries the renderer used for PDF previews.
type TemplateController struct {
	renderer renderer.Renderer
}

func NewTemplateController(r renderer.Renderer) *TemplateController {
	return &TemplateController{renderer: r}
}

// Preview renders the template with sample data and an optional theme
// and streams the PDF back.
func (tc *TemplateController) Preview(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	stored, queryErr := templateModel.GetById(c.Params("templateId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if stored == nil {
		return response.SendFailed(c, "Template not found")
	}
	if stored.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	body := new(payload.PreviewTemplatePayload)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(body); err != nil {
			return response.SendFailed(c, "Invalid request body")
		}
	}

	theme := placeholder.Set{}
	if body.ThemeName != "" {
		loaded, themeErr := parameterModel.GetTheme(body.ThemeName)
		if themeErr != nil {
			return response.SendFailed(c, themeErr.Error())
		}
		theme = loaded
	}

	html := template.ApplyTheme(stored.HTML, theme)
	sample := template.SampleContext(template.ExtractPlaceholders(stored.HTML))
	for key, value := range theme {
		sample[key] = value
	}
	html = template.Render(html, sample)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pdfBytes, renderErr := tc.renderer.RenderPDF(ctx, html, renderer.Meta{
		ParticipantID: "preview",
		Fields:        sample,
	})
	if renderErr != nil {
		slog.Error("Template preview render failed", "error", renderErr, "template_id", stored.ID)
		return response.SendInternalError(c, renderErr)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "inline; filename=preview.pdf")
	return c.Send(pdfBytes)
}
