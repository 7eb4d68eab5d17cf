package services

import "lye_backend/internal/email"

// ServiceContainer bundles every service for the handler layer.
type ServiceContainer struct {
	AuthService          AuthService
	UserService          UserService
	InvestigationService InvestigationService
	ReviewService        ReviewService
	CategoryService      CategoryService
	StatsService         StatsService
	UploadService        UploadService
	EmailService         email.Provider
}
