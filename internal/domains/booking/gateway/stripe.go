package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"boatsandjoy/config"
	"boatsandjoy/infras/otel"
	"boatsandjoy/internal/domains/booking/model"
	"boatsandjoy/shared/constant"
	"boatsandjoy/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

var centsPerUnit = decimal.NewFromInt(100)

type stripeGateway struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewStripe(cfg *config.Config, otl otel.Otel) PaymentGateway {
	stripe.Key = cfg.Stripe.SecretKey

	return &stripeGateway{
		cfg:  cfg,
		otel: otl,
	}
}

func (g *stripeGateway) GenerateCheckoutSessionID(ctx context.Context, details model.PurchaseDetails) (res string, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".GenerateCheckoutSessionID")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.cfg.Stripe.SuccessURL),
		CancelURL:  stripe.String(g.cfg.Stripe.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(details.Currency),
					UnitAmount: stripe.Int64(details.Amount.Mul(centsPerUnit).IntPart()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(details.Name),
						Description: stripe.String(details.Description),
					},
				},
			},
		},
	}

	sess, err := session.New(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to create checkout session")

		return res, failure.BadGateway("failed to create checkout session") // nolint:wrapcheck
	}

	return sess.ID, nil
}

func (g *stripeGateway) RegisterEvent(ctx context.Context, headers http.Header, payload []byte) (res model.PaymentEvent, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".RegisterEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := webhook.ConstructEvent(payload, headers.Get(constant.RequestHeaderStripeSignature), g.cfg.Stripe.WebhookSecret)
	if err != nil {
		log.Error().Err(err).Msg("webhook signature verification failed")

		return res, failure.BadGateway("webhook verification failed") // nolint:wrapcheck
	}

	res.Type = string(event.Type)

	switch event.Type {
	case "checkout.session.completed":
		res.Settled = true
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		res.Settled = false
	default:
		// Not a checkout outcome; acknowledged but carries no session to act on.
		return res, nil
	}

	var sess stripe.CheckoutSession
	if err = json.Unmarshal(event.Data.Raw, &sess); err != nil {
		log.Error().Err(err).Str("type", res.Type).Msg("failed to decode checkout session payload")

		return model.PaymentEvent{}, failure.BadGateway("malformed event payload") // nolint:wrapcheck
	}

	res.SessionID = sess.ID
	res.CustomerEmail = sess.CustomerEmail

	if res.CustomerEmail == "" && sess.CustomerDetails != nil {
		res.CustomerEmail = sess.CustomerDetails.Email
	}

	return res, nil
}
