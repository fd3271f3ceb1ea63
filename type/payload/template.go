package payload

type CreateTemplatePayload struct {
	Name string `json:"name" validate:"required"`
	HTML string `json:"html" validate:"required"`
}

type UpdateTemplatePayload struct {
	Name string `json:"name"`
	HTML string `json:"html"`
}

type PreviewTemplatePayload struct {
	ThemeName string `json:"theme_name"`
}
