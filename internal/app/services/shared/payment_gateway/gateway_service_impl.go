package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

const resourcePayment = "Payment"

type gatewayService struct {
	BaseUrl  string
	Username string
	ApiKey   string
}

func NewGatewayService(internalConfig *config.InternalConfig) (contracts.PaymentGatewayService, error) {
	return &gatewayService{
		BaseUrl:  internalConfig.PaymentGateway.BaseUrl,
		Username: internalConfig.PaymentGateway.Username,
		ApiKey:   internalConfig.PaymentGateway.ApiKey,
	}, nil
}

func (s *gatewayService) CreatePayment(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResult, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/payments", s.BaseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.Username, s.ApiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("payment gateway returned %d", resp.StatusCode), resp.StatusCode, resourcePayment)
	}

	var result responses.PaymentResult
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourcePayment)
	}
	return &result, nil
}

func (s *gatewayService) CheckPaymentStatus(ctx context.Context, paymentID string) (*responses.PaymentResult, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/payments/%s", s.BaseUrl, paymentID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.Username, s.ApiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("payment gateway returned %d", resp.StatusCode), resp.StatusCode, resourcePayment)
	}

	var result responses.PaymentResult
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourcePayment)
	}
	return &result, nil
}
