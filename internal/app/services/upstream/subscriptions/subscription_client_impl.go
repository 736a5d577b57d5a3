package subscriptions

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

const resourceSubscription = "Subscription"

type subscriptionClient struct {
	BaseUrl string
}

func NewSubscriptionClient(baseUrl string) contracts.SubscriptionClient {
	return &subscriptionClient{
		BaseUrl: baseUrl,
	}
}

// GetActiveSubscription returns the payload untouched. The shape varies per
// deployment; normalization is the quota evaluator's job, not the client's.
func (c *subscriptionClient) GetActiveSubscription(ctx context.Context, userID string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/subscriptions/active?userId=%s", c.BaseUrl, userID), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("subscription service returned %d", resp.StatusCode), resp.StatusCode, resourceSubscription)
	}

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceSubscription)
	}
	return json.RawMessage(buf.Bytes()), nil
}

func (c *subscriptionClient) UseService(ctx context.Context, input contracts.UseServiceInput) error {
	requestJSON, err := json.Marshal(input)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/subscriptions/use", c.BaseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return exceptions.ErrUpstreamStatus(fmt.Errorf("subscription service returned %d", resp.StatusCode), resp.StatusCode, resourceSubscription)
	}
	return nil
}
