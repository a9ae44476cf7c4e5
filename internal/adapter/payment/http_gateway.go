// Package payment is the placeholder gateway integration: it forwards the
// charge request and maps the provider's completed/failed answer back.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rl1809/checkout/internal/port"
)

type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) ProcessPayment(ctx context.Context, orderID string, payload map[string]any) (*port.PaymentResult, error) {
	body, err := json.Marshal(map[string]any{
		"order_id": orderID,
		"payload":  payload,
	})
	if err != nil {
		return nil, fmt.Errorf("encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway: unexpected status %d", resp.StatusCode)
	}

	var result port.PaymentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode payment result: %w", err)
	}
	return &result, nil
}
