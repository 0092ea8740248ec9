package service

import (
	"github.com/langlens/account-service/internal/config"
	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/mail"
	"github.com/langlens/account-service/internal/store"
)

// Services aggregates the business-logic layer. Handlers depend on this
// struct rather than on the individual implementations.
type Services struct {
	AuthService    AuthService
	ResetService   ResetService
	AccountService AccountService
}

// NewServices wires every service to the shared storages, the outbound mail
// sender, and the application configuration.
func NewServices(storages *store.Storages, sender mail.Sender, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		ResetService:   NewResetService(storages.UserRepository, sender, logger),
		AccountService: NewAccountService(storages.UserRepository, logger),
	}
}
