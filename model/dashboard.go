package model

type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
	Total  float64       `json:"total"`
}

type DashboardResponse struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Subscription Series `json:"subscription"`
	Revenue      Series `json:"revenue"`
}

type MenuItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type SettingsResponse struct {
	Sections []string `json:"sections"`
}
