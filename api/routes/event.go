package routes

import (
	"github.com/gofiber/fiber/v2"

	event_controller "github.com/nepemufsc/nepemcert-api/api/controllers/event"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
)

func SetupEventRoutes(router fiber.Router, participantRepo participantModel.IParticipantRepository) {
	eventCtrl := event_controller.NewEventController(participantRepo)

	eventGroup := router.Group("event")

	eventGroup.Use(middleware.AuthMiddleware())

	eventGroup.Get("", event_controller.GetByUser)
	eventGroup.Get(":eventId", event_controller.GetById)
	eventGroup.Post("", event_controller.Create)
	eventGroup.Put(":eventId", event_controller.Update)
	eventGroup.Delete(":eventId", eventCtrl.Delete)
}
