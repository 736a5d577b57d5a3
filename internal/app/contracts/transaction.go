package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *models.Transaction) (string, error)
	UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatusPayment) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error)
}
