package dto

// DashboardStats holds the four independent company dashboard counts.
type DashboardStats struct {
	ActiveInternships int64 `json:"activeInternships"`
	TotalApplications int64 `json:"totalApplications"`
	PendingReviews    int64 `json:"pendingReviews"`
	Hired             int64 `json:"hired"`
}
