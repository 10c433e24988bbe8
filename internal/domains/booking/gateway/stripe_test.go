package gateway_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"boatsandjoy/config"
	otelMocks "boatsandjoy/infras/otel/mocks"
	"boatsandjoy/internal/domains/booking/gateway"
	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway() gateway.PaymentGateway {
	cfg := &config.Config{}
	cfg.Stripe.WebhookSecret = testWebhookSecret

	return gateway.NewStripe(cfg, otelMocks.NewOtel())
}

func signedHeaders(t *testing.T, payload []byte) (http.Header, []byte) {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	headers := http.Header{}
	headers.Set(constant.RequestHeaderStripeSignature, signed.Header)

	return headers, signed.Payload
}

func TestRegisterEventSettled(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "sess_1", "customer_email": "a@b.com"}}
	}`)

	headers, body := signedHeaders(t, payload)

	event, err := newTestGateway().RegisterEvent(context.Background(), headers, body)
	require.NoError(t, err)

	assert.True(t, event.Settled)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Equal(t, "sess_1", event.SessionID)
	assert.Equal(t, "a@b.com", event.CustomerEmail)
}

func TestRegisterEventCustomerDetailsFallback(t *testing.T) {
	payload := []byte(`{
		"id": "evt_2",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "sess_2", "customer_details": {"email": "c@d.com"}}}
	}`)

	headers, body := signedHeaders(t, payload)

	event, err := newTestGateway().RegisterEvent(context.Background(), headers, body)
	require.NoError(t, err)

	assert.Equal(t, "c@d.com", event.CustomerEmail)
}

func TestRegisterEventExpired(t *testing.T) {
	payload := []byte(`{
		"id": "evt_3",
		"api_version": "2023-10-16",
		"type": "checkout.session.expired",
		"data": {"object": {"id": "sess_3"}}
	}`)

	headers, body := signedHeaders(t, payload)

	event, err := newTestGateway().RegisterEvent(context.Background(), headers, body)
	require.NoError(t, err)

	assert.False(t, event.Settled)
	assert.Equal(t, "sess_3", event.SessionID)
}

func TestRegisterEventIgnoresUnknownType(t *testing.T) {
	payload := []byte(`{
		"id": "evt_4",
		"api_version": "2023-10-16",
		"type": "payment_intent.created",
		"data": {"object": {"id": "pi_1"}}
	}`)

	headers, body := signedHeaders(t, payload)

	event, err := newTestGateway().RegisterEvent(context.Background(), headers, body)
	require.NoError(t, err)

	assert.False(t, event.Settled)
	assert.Empty(t, event.SessionID)
}

func TestRegisterEventRejectsBadSignature(t *testing.T) {
	headers := http.Header{}
	headers.Set(constant.RequestHeaderStripeSignature, "t=1,v1=deadbeef")

	_, err := newTestGateway().RegisterEvent(context.Background(), headers, []byte(`{}`))
	require.Error(t, err)

	assert.True(t, failure.Is(err, http.StatusBadGateway))
}

func TestRegisterEventRejectsMissingSignature(t *testing.T) {
	_, err := newTestGateway().RegisterEvent(context.Background(), http.Header{}, []byte(`{}`))

	require.Error(t, err)
}

func TestRegisterEventRejectsStaleTimestamp(t *testing.T) {
	payload := []byte(`{
		"id": "evt_5",
		"api_version": "2023-10-16",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "sess_5"}}
	}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now().Add(-24 * time.Hour),
	})

	headers := http.Header{}
	headers.Set(constant.RequestHeaderStripeSignature, signed.Header)

	_, err := newTestGateway().RegisterEvent(context.Background(), headers, signed.Payload)
	require.Error(t, err)

	assert.True(t, failure.Is(err, http.StatusBadGateway))
}
