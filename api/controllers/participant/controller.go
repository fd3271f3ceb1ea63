package participant_controller

import (
	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
)

// ParticipantController handles participant HTTP requests.
type ParticipantController struct {
	participantRepo participantModel.IParticipantRepository
}

func NewParticipantController(participantRepo participantModel.IParticipantRepository) *ParticipantController {
	return &ParticipantController{participantRepo: participantRepo}
}
