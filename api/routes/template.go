package routes

import (
	"github.com/gofiber/fiber/v2"

	template_controller "github.com/nepemufsc/nepemcert-api/api/controllers/template"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
)

func SetupTemplateRoutes(router fiber.Router, pdfRenderer renderer.Renderer) {
	templateCtrl := template_controller.NewTemplateController(pdfRenderer)

	templateGroup := router.Group("template")

	templateGroup.Use(middleware.AuthMiddleware())

	templateGroup.Get("", template_controller.GetByUser)
	templateGroup.Get(":templateId", template_controller.GetById)
	templateGroup.Post("", template_controller.Create)
	templateGroup.Put(":templateId", template_controller.Update)
	templateGroup.Delete(":templateId", template_controller.Delete)
	templateGroup.Get("placeholders/:templateId", template_controller.GetPlaceholders)
	templateGroup.Post("preview/:templateId", templateCtrl.Preview)
}
