package service

import (
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	AuditService AuditService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	authService := NewAuthService(cfg, logger)

	return &Services{
		AuthService:  authService,
		UserService:  NewUserService(storages.UserRepository, authService, validators.NewUserValidator(), cfg.PasswordHashCost, logger),
		AuditService: NewAuditService(storages.LogRepository, logger),
	}
}
