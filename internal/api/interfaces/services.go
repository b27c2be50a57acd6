package interfaces

import (
	"context"

	"church-portal/internal/auth"
	"church-portal/internal/database/repositories"
	"church-portal/pkg/config"
	"church-portal/pkg/logger"
)

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	AuthService() AuthServiceInterface
	Sessions() *auth.SessionGateway
	Passwords() *auth.PasswordHasher
	Ping(ctx context.Context) error

	UserRepository() *repositories.UserRepository
	DonationRepository() *repositories.DonationRepository
	MemberRepository() *repositories.MemberRepository
	VisitorRepository() *repositories.VisitorRepository
	EventRepository() *repositories.EventRepository
	StreamRepository() *repositories.StreamRepository
	DashboardRepository() *repositories.DashboardRepository
	AuditLogRepository() *repositories.AuditLogRepository
}
