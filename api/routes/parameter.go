package routes

import (
	"github.com/gofiber/fiber/v2"

	parameter_controller "github.com/nepemufsc/nepemcert-api/api/controllers/parameter"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
)

func SetupParameterRoutes(router fiber.Router) {
	parameterGroup := router.Group("parameter")

	parameterGroup.Use(middleware.AuthMiddleware())

	parameterGroup.Get("", parameter_controller.Get)
	parameterGroup.Put("default", parameter_controller.UpdateDefaults)
	parameterGroup.Put("institutional", parameter_controller.UpdateInstitutional)
}
