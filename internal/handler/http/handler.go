package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/langlens/account-service/internal/logger"
	"github.com/langlens/account-service/internal/service"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}
