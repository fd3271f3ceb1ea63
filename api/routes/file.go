package routes

import (
	"github.com/gofiber/fiber/v2"

	file_controller "github.com/nepemufsc/nepemcert-api/api/controllers/file"
	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
)

func SetupFileRoutes(router fiber.Router) {
	fileGroup := router.Group("files")

	fileGroup.Use(middleware.AuthMiddleware())

	fileGroup.Post(":type", file_controller.UploadResource)
	fileGroup.Get(":type", file_controller.GetAllResourceByType)
	fileGroup.Delete(":type", file_controller.DeleteResource)
}

// SetupPublicFileRoutes serves downloads without authentication. Direct
// browser access (img tags, certificate links) needs these; the
// controllers validate what may be served.
func SetupPublicFileRoutes(router fiber.Router, participantRepo participantModel.IParticipantRepository) {
	fileCtrl := file_controller.NewFileController(participantRepo)

	router.Get("files/download/:bucket/*", file_controller.DownloadFile)
	router.Get("certificate/:participantId", fileCtrl.PublicDownloadCertificate)
}
