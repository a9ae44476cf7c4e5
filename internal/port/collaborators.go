package port

import "context"

type PackageSpec struct {
	WeightGrams int `json:"weight"`
	WidthCm     int `json:"width"`
	HeightCm    int `json:"height"`
	LengthCm    int `json:"length"`
}

type QuoteRequest struct {
	FromPostalCode    string      `json:"fromPostalCode"`
	ToPostalCode      string      `json:"toPostalCode"`
	Package           PackageSpec `json:"package"`
	PreferredCarriers []string    `json:"preferredCarriers"`
}

type Quote struct {
	CarrierName   string `json:"carrierName"`
	PriceCents    int64  `json:"price"`
	EstimatedDays int    `json:"estimatedDays"`
}

// ShippingQuoteProvider returns carrier quotes ordered by preference. Callers
// must tolerate both an empty list and an error; neither may abort checkout.
type ShippingQuoteProvider interface {
	GetQuotes(ctx context.Context, req QuoteRequest) ([]Quote, error)
}

type Notification struct {
	Recipient  string         `json:"recipient"`
	TemplateID string         `json:"templateId"`
	Payload    map[string]any `json:"payload"`
}

// NotificationDispatcher is fire-and-forget; failures are non-fatal to the
// caller.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

type PaymentResult struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

const (
	PaymentResultCompleted = "completed"
	PaymentResultFailed    = "failed"
)

// PaymentGateway is the placeholder integration point for charging an order.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, orderID string, payload map[string]any) (*PaymentResult, error)
}
