package payload

type SavePresetPayload struct {
	Name       string `json:"name" validate:"required"`
	TemplateID string `json:"template_id"`
	ThemeName  string `json:"theme_name"`
	Local      string `json:"local"`
	City       string `json:"city"`
	Workload   string `json:"workload"`
}
