package domain

type DashboardStats struct {
	TotalMembers   int     `json:"totalMembers"`
	ActiveMembers  int     `json:"activeMembers"`
	TotalCoaches   int     `json:"totalCoaches"`
	TotalSchedules int     `json:"totalSchedules"`
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthRevenue   float64 `json:"monthRevenue"`
	TodayRevenue   float64 `json:"todayRevenue"`
}
