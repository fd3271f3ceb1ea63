package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/batchModel"
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
)

func Init(router fiber.Router) {
	participantRepo := participantModel.NewParticipantRepository(common.Gorm)

	pdfRenderer := renderer.New()

	signer, signerErr := renderer.NewSigner()
	if signerErr != nil {
		slog.Warn("PDF signing disabled", "error", signerErr)
	}

	workers := 0
	if common.Config.RenderWorkers != nil {
		workers = *common.Config.RenderWorkers
	}

	salt := ""
	if common.Config.CodeSalt != nil {
		salt = *common.Config.CodeSalt
	}

	pipeline := &renderer.Pipeline{
		Renderer:   pdfRenderer,
		Signer:     signer,
		Storage:    &renderer.MinioStorage{Bucket: *common.Config.BucketCertificate},
		Store:      &batchModel.PipelineStore{Participants: participantRepo},
		Notify:     util.SendBatchSummary,
		Workers:    workers,
		VerifyHost: *common.Config.VerifyHost,
		Salt:       salt,
	}

	api := router.Group("api")

	publicGroup := api.Group("public")
	SetupAuthRoutes(publicGroup)
	SetupVerifyRoutes(publicGroup)
	SetupPublicFileRoutes(publicGroup, participantRepo)

	SetupTemplateRoutes(api, pdfRenderer)
	SetupEventRoutes(api, participantRepo)
	SetupParticipantRoutes(api, participantRepo)
	SetupGenerationRoutes(api, participantRepo, pipeline)
	SetupThemeRoutes(api)
	SetupParameterRoutes(api)
	SetupPresetRoutes(api)
	SetupFileRoutes(api)
}
