package routes

import (
	"github.com/gofiber/fiber/v2"

	preset_controller "github.com/nepemufsc/nepemcert-api/api/controllers/preset"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
)

func SetupPresetRoutes(router fiber.Router) {
	presetGroup := router.Group("preset")

	presetGroup.Use(middleware.AuthMiddleware())

	presetGroup.Get("", preset_controller.List)
	presetGroup.Get(":slug", preset_controller.Get)
	presetGroup.Post("", preset_controller.Save)
	presetGroup.Delete(":slug", preset_controller.Delete)
}
