package models

// DashboardResponse is returned by GET /dashboard.
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Logged-in user
	Username string `json:"username"`
	// True when the user has not recorded anything yet
	Empty bool `json:"empty"`
	// Last five entries in recording order
	Recent []MoodEntry `json:"recent"`
}

// ReportResponse is returned by GET /reports.
// swagger:model ReportResponse
type ReportResponse struct {
	// True when the history is empty
	Empty bool `json:"empty"`
	// Entries sorted by date, newest first
	Entries []MoodEntry `json:"entries"`
	// Floor of the mean intensity; absent when no entry carries one
	Average *int `json:"average,omitempty"`
}
