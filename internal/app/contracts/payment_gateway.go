package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreatePayment(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResult, error)
	CheckPaymentStatus(ctx context.Context, paymentID string) (*responses.PaymentResult, error)
}
