package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
)

// Intent is the subset of a provider payment intent the API exposes.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Gateway wraps the payment provider. Configured reports whether a secret key
// was supplied; without one CreateIntent must not be called.
type Gateway interface {
	Configured() bool
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency, description string) (Intent, error)
}

type gatewayImpl struct {
	api      *client.API
	currency string
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	gateway := &gatewayImpl{
		currency: cfg.External.Stripe.Currency,
		otel:     otl,
	}

	if cfg.External.Stripe.SecretKey != "" {
		gateway.api = &client.API{}
		gateway.api.Init(cfg.External.Stripe.SecretKey, nil)
	}

	return gateway
}

func (g *gatewayImpl) Configured() bool {
	return g.api != nil
}

// CreateIntent creates a provider payment intent. Amounts are converted to the
// smallest currency unit, so "10.50" becomes 1050.
func (g *gatewayImpl) CreateIntent(ctx context.Context, amount decimal.Decimal, currency, description string) (res Intent, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateIntent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if currency == "" {
		currency = g.currency
	}

	params := &stripego.PaymentIntentParams{
		Params:      stripego.Params{Context: ctx},
		Amount:      stripego.Int64(amount.Shift(2).IntPart()),
		Currency:    stripego.String(currency),
		Description: stripego.String(description),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return res, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}
