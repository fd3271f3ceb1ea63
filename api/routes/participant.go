package routes

import (
	"github.com/gofiber/fiber/v2"

	participant_controller "github.com/nepemufsc/nepemcert-api/api/controllers/participant"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
)

func SetupParticipantRoutes(router fiber.Router, participantRepo participantModel.IParticipantRepository) {
	participantCtrl := participant_controller.NewParticipantController(participantRepo)

	participantGroup := router.Group("participant")

	participantGroup.Use(middleware.AuthMiddleware())

	participantGroup.Post("upload/:eventId", participantCtrl.Upload)
	participantGroup.Get(":eventId", participantCtrl.GetByEvent)
	participantGroup.Delete(":participantId", participantCtrl.Delete)
}
