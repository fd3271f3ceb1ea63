package payload

type CreateEventPayload struct {
	Name       string `json:"name" validate:"required"`
	TemplateID string `json:"template_id" validate:"required"`
	Local      string `json:"local"`
	City       string `json:"city"`
	EventDate  string `json:"event_date"`
	Workload   string `json:"workload"`
	ThemeName  string `json:"theme_name"`
}

type UpdateEventPayload struct {
	Name       string `json:"name"`
	TemplateID string `json:"template_id"`
	Local      string `json:"local"`
	City       string `json:"city"`
	EventDate  string `json:"event_date"`
	Workload   string `json:"workload"`
	ThemeName  string `json:"theme_name"`
}
