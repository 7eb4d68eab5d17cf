package dto

// PlatformStats is the aggregate statistics response.
type PlatformStats struct {
	TotalInvestigations      int64            `json:"total_investigations"`
	TotalActiveUsers         int64            `json:"total_active_users"`
	TotalReviews             int64            `json:"total_reviews"`
	InvestigationsPorMateria map[string]int64 `json:"investigations_por_materia"`
	UsersPorGrado            map[string]int64 `json:"users_por_grado"`
	RatingDistribution       map[int]int64    `json:"rating_distribution"`
}
