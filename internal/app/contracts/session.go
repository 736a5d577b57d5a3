package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

// SessionService reads the login session written by the identity layer. This
// service never writes it.
type SessionService interface {
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
}
