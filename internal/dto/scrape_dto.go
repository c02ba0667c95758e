package dto

type ScrapeRequest struct {
	URL       string `json:"url" validate:"required"`
	ProjectID string `json:"project_id" validate:"required"`
}

type ScrapeResponse struct {
	Insights    map[string]interface{} `json:"insights"`
	Suggestions []interface{}          `json:"suggestions"`
}
