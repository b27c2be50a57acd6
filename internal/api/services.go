package api

import (
	"context"
	"fmt"

	"church-portal/internal/api/interfaces"
	"church-portal/internal/auth"
	"church-portal/internal/database"
	"church-portal/internal/database/repositories"
	"church-portal/pkg/config"
	"church-portal/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	// Core dependencies
	DB     *database.DB
	Logger *logger.Logger
	Config *config.Config

	tokens    *auth.TokenService
	sessions  *auth.SessionGateway
	passwords *auth.PasswordHasher

	// Repositories
	userRepository      *repositories.UserRepository
	donationRepository  *repositories.DonationRepository
	memberRepository    *repositories.MemberRepository
	visitorRepository   *repositories.VisitorRepository
	eventRepository     *repositories.EventRepository
	streamRepository    *repositories.StreamRepository
	dashboardRepository *repositories.DashboardRepository
	auditLogRepository  *repositories.AuditLogRepository
}

// SecretProviderFor builds the signing secret chain: the JWT_SECRET
// environment variable, then the mounted secret file, then the config value.
func SecretProviderFor(cfg *config.Config) auth.SecretProvider {
	return auth.SecretChain(
		auth.EnvSecret("JWT_SECRET"),
		auth.FileSecret(cfg.Security.JWTSecretFile),
		auth.StaticSecret(cfg.Security.JWTSecret),
	)
}

// NewServices creates a new services container. A nil secrets provider
// falls back to SecretProviderFor(cfg).
func NewServices(db *database.DB, log *logger.Logger, cfg *config.Config, secrets auth.SecretProvider) *Services {
	if secrets == nil {
		secrets = SecretProviderFor(cfg)
	}

	tokens := auth.NewTokenService(secrets)

	return &Services{
		DB:     db,
		Logger: log,
		Config: cfg,

		tokens:    tokens,
		sessions:  auth.NewSessionGateway(tokens),
		passwords: auth.NewPasswordHasher(cfg.Security.BcryptCost),

		userRepository:      repositories.NewUserRepository(db),
		donationRepository:  repositories.NewDonationRepository(db),
		memberRepository:    repositories.NewMemberRepository(db),
		visitorRepository:   repositories.NewVisitorRepository(db),
		eventRepository:     repositories.NewEventRepository(db),
		streamRepository:    repositories.NewStreamRepository(db),
		dashboardRepository: repositories.NewDashboardRepository(db),
		auditLogRepository:  repositories.NewAuditLogRepository(db),
	}
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) AuthService() interfaces.AuthServiceInterface {
	return s.tokens
}

func (s *Services) Sessions() *auth.SessionGateway {
	return s.sessions
}

func (s *Services) Passwords() *auth.PasswordHasher {
	return s.passwords
}

func (s *Services) UserRepository() *repositories.UserRepository {
	return s.userRepository
}

func (s *Services) DonationRepository() *repositories.DonationRepository {
	return s.donationRepository
}

func (s *Services) MemberRepository() *repositories.MemberRepository {
	return s.memberRepository
}

func (s *Services) VisitorRepository() *repositories.VisitorRepository {
	return s.visitorRepository
}

func (s *Services) EventRepository() *repositories.EventRepository {
	return s.eventRepository
}

func (s *Services) StreamRepository() *repositories.StreamRepository {
	return s.streamRepository
}

func (s *Services) DashboardRepository() *repositories.DashboardRepository {
	return s.dashboardRepository
}

func (s *Services) AuditLogRepository() *repositories.AuditLogRepository {
	return s.auditLogRepository
}

// Ping checks the database connection
func (s *Services) Ping(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("database not configured")
	}
	return s.DB.PingContext(ctx)
}
