package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"net/http"

	"boatsandjoy/internal/domains/booking/model"
)

// PaymentGateway abstracts the checkout provider. RegisterEvent is the
// security boundary for inbound webhooks: nothing downstream may look at a
// payload that did not pass signature verification here.
type PaymentGateway interface {
	GenerateCheckoutSessionID(ctx context.Context, details model.PurchaseDetails) (string, error)
	RegisterEvent(ctx context.Context, headers http.Header, payload []byte) (model.PaymentEvent, error)
}
