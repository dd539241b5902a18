package dto

type TodayReportStatusDTO struct {
	HasReport bool   `json:"hasReport"`
	ReportID  *int64 `json:"reportId"`
}

type RecentReportDTO struct {
	ID           int64  `json:"id"`
	ReportDate   string `json:"reportDate"`
	VisitCount   int64  `json:"visitCount"`
	CommentCount int64  `json:"commentCount"`
}

type DashboardDTO struct {
	Today               string               `json:"today"`
	TodayReportStatus   TodayReportStatusDTO `json:"todayReportStatus"`
	UnreadCommentsCount int64                `json:"unreadCommentsCount"`
	RecentReports       []RecentReportDTO    `json:"recentReports"`
}
