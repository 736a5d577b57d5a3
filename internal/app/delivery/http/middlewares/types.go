package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	RedisRepository contracts.RedisRepository
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewMiddlewares(
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Middlewares {
	return &Middlewares{
		RedisRepository: redisRepository,
		SessionService:  sessionService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}
