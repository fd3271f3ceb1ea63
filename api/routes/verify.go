package routes

import (
	"github.com/gofiber/fiber/v2"

	verify_controller "github.com/nepemufsc/nepemcert-api/api/controllers/verify"
)

func SetupVerifyRoutes(router fiber.Router) {
	router.Get("verify/:code", verify_controller.Verify)
}
