package models

// DashboardStats are the headline counters of the dashboard
type DashboardStats struct {
	TotalContent int64 `json:"total_content"`
	Published    int64 `json:"published"`
	Scheduled    int64 `json:"scheduled"`
	Generating   int64 `json:"generating"`
	SuccessRate  int   `json:"success_rate"`
}

// DashboardResponse aggregates everything the dashboard home page shows
type DashboardResponse struct {
	Stats             DashboardStats    `json:"stats"`
	RecentActivity    []ActivityLog     `json:"recent_activity"`
	RecentContent     []ContentItem     `json:"recent_content"`
	UpcomingScheduled []ScheduledPost   `json:"upcoming_scheduled"`
	Automation        *AutomationConfig `json:"automation"`
}
