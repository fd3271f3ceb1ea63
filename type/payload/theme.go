package payload

type SaveThemePayload struct {
	Name   string         `json:"name" validate:"required"`
	Values map[string]any `json:"values" validate:"required"`
}

type UpdateParameterPayload struct {
	Values map[string]any `json:"values" validate:"required"`
}
