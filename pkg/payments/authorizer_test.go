package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "wakeline/pkg/errors"
	"wakeline/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestAuthorize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/authorizations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "auth-1",
			"rider_id":   "rider-1",
			"session_id": "s1",
			"amount":     "150.00",
			"currency":   "AED",
		})
	}))
	defer srv.Close()

	a := NewHTTPAuthorizer(srv.URL, testLogger())
	auth, err := a.Authorize(context.Background(), "rider-1", "s1", decimal.NewFromInt(150), "AED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.ID != "auth-1" || auth.RiderID != "rider-1" {
		t.Errorf("unexpected authorization: %+v", auth)
	}
}

func TestAuthorize_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	a := NewHTTPAuthorizer(srv.URL, testLogger())
	_, err := a.Authorize(context.Background(), "rider-1", "s1", decimal.NewFromInt(150), "AED")
	if err == nil {
		t.Fatal("expected declined authorization to fail")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodePaymentRequired {
		t.Errorf("expected PAYMENT_NOT_AUTHORIZED, got %v", err)
	}
}

func TestAuthorize_GatewayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := NewHTTPAuthorizer(srv.URL, testLogger())
	_, err := a.Authorize(context.Background(), "rider-1", "s1", decimal.NewFromInt(150), "AED")
	if err == nil {
		t.Fatal("expected unreachable gateway to fail")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.CodeUnavailable {
		t.Errorf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
	if appErr != nil && appErr.StatusCode() != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", appErr.StatusCode())
	}
}

func TestAuthorize_NoGatewayAutoApproves(t *testing.T) {
	a := NewHTTPAuthorizer("", testLogger())
	auth, err := a.Authorize(context.Background(), "rider-1", "s1", decimal.NewFromInt(150), "AED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.RiderID != "rider-1" || auth.SessionID != "s1" {
		t.Errorf("unexpected authorization: %+v", auth)
	}
}
