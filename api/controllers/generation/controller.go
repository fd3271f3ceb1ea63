package generation_controller

import (
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/internal/renderer"
)

// GenerationController owns the batch pipeline and the participant
// repository backing batch status queries.
type GenerationController struct {
	participantRepo participantModel.IParticipantRepository
	pipeline        *renderer.Pipeline
}

func NewGenerationController(participantRepo participantModel.IParticipantRepository, pipeline *renderer.Pipeline) *GenerationController {
	return &GenerationController{
		participantRepo: participantRepo,
		pipeline:        pipeline,
	}
}
