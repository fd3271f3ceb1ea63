package routes

import (
	"github.com/gofiber/fiber/v2"

	theme_controller "github.com/nepemufsc/nepemcert-api/api/controllers/theme"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
)

func SetupThemeRoutes(router fiber.Router) {
	themeGroup := router.Group("theme")

	themeGroup.Use(middleware.AuthMiddleware())

	themeGroup.Get("", theme_controller.List)
	themeGroup.Get(":name", theme_controller.Get)
	themeGroup.Post("", theme_controller.Save)
	themeGroup.Post("import", theme_controller.Import)
	themeGroup.Delete(":name", theme_controller.Delete)
}
