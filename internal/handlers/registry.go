package handlers

// AppHandlers bundles every HTTP handler of the application.
type AppHandlers struct {
	UserHandler          *UserHandler
	WorkHandler          *WorkHandler
	InvestigationHandler *InvestigationHandler
	ReviewHandler        *ReviewHandler
	CategoryHandler      *CategoryHandler
	StatsHandler         *StatsHandler
}
