package routes

import (
	"github.com/gofiber/fiber/v2"

	generation_controller "github.com/nepemufsc/nepemcert-api/api/controllers/generation"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
)

func SetupGenerationRoutes(router fiber.Router, participantRepo participantModel.IParticipantRepository, pipeline *renderer.Pipeline) {
	generationCtrl := generation_controller.NewGenerationController(participantRepo, pipeline)

	generationGroup := router.Group("generation")

	generationGroup.Use(middleware.AuthMiddleware())

	generationGroup.Post("start/:eventId", generationCtrl.Start)
	generationGroup.Get("status/:batchId", generationCtrl.Status)
	generationGroup.Get("list/:eventId", generationCtrl.ListByEvent)
	generationGroup.Get("report/:batchId", generationCtrl.Report)
}
