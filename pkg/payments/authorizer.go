package payments

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"wakeline/pkg/client"
	apperrors "wakeline/pkg/errors"
	"wakeline/pkg/logger"
)

// Authorization is a payment hold placed before a seat is committed.
type Authorization struct {
	ID        string          `json:"id"`
	RiderID   string          `json:"rider_id"`
	SessionID string          `json:"session_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

// Authorizer places a hold for the per-seat price before booking. The seat is
// only committed once the hold succeeds.
type Authorizer interface {
	Authorize(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*Authorization, error)
}

type authorizeRequest struct {
	RiderID   string `json:"rider_id"`
	SessionID string `json:"session_id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

type httpAuthorizer struct {
	http *client.HttpClient
	log  *logger.Logger
}

// NewHTTPAuthorizer talks to an external payment gateway. An empty endpoint
// returns a no-op authorizer so local setups run without a gateway.
func NewHTTPAuthorizer(endpoint string, log *logger.Logger) Authorizer {
	if endpoint == "" {
		return &noopAuthorizer{log: log}
	}
	return &httpAuthorizer{
		http: client.NewHttpClient(endpoint),
		log:  log,
	}
}

func (a *httpAuthorizer) Authorize(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*Authorization, error) {
	req := authorizeRequest{
		RiderID:   riderID,
		SessionID: sessionID,
		Amount:    amount.StringFixed(2),
		Currency:  currency,
	}

	resp, err := a.http.POST("/v1/authorizations", req)
	if err != nil {
		a.log.Error("Payment gateway unreachable",
			"rider_id", riderID,
			"session_id", sessionID,
			"error", err,
		)
		return nil, apperrors.Unavailable("payment gateway")
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		a.log.Warn("Payment authorization declined",
			"rider_id", riderID,
			"session_id", sessionID,
			"status", resp.StatusCode,
		)
		return nil, apperrors.PaymentNotAuthorized(fmt.Sprintf("payment authorization declined (status %d)", resp.StatusCode))
	}

	var auth Authorization
	if err := resp.DecodeJSON(&auth); err != nil {
		return nil, apperrors.Internal("failed to decode authorization response", err)
	}

	return &auth, nil
}

type noopAuthorizer struct {
	log *logger.Logger
}

func (a *noopAuthorizer) Authorize(ctx context.Context, riderID, sessionID string, amount decimal.Decimal, currency string) (*Authorization, error) {
	a.log.Debug("Payment gateway not configured, auto-approving hold",
		"rider_id", riderID,
		"session_id", sessionID,
		"amount", amount.StringFixed(2),
		"currency", currency,
	)

	return &Authorization{
		ID:        fmt.Sprintf("noop-%s-%s", sessionID, riderID),
		RiderID:   riderID,
		SessionID: sessionID,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now(),
	}, nil
}
