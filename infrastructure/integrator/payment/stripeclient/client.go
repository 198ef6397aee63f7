package stripeclient

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/vfg2006/analytico-api/internal/config"
)

// Client expõe apenas as chamadas do Stripe que o faturamento usa
type Client interface {
	CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	CreatePortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error)
	GetSubscription(subscriptionID string) (*stripe.Subscription, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}

type StripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewClient(cfg config.Stripe) Client {
	return &StripeClient{
		api:           client.New(cfg.SecretKey, nil),
		webhookSecret: cfg.WebhookSecret,
	}
}

func (c *StripeClient) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.api.Customers.New(params)
}

func (c *StripeClient) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}

func (c *StripeClient) CreatePortalSession(params *stripe.BillingPortalSessionParams) (*stripe.BillingPortalSession, error) {
	return c.api.BillingPortalSessions.New(params)
}

func (c *StripeClient) GetSubscription(subscriptionID string) (*stripe.Subscription, error) {
	return c.api.Subscriptions.Get(subscriptionID, nil)
}

// ConstructEvent valida a assinatura Stripe-Signature antes de decodificar o evento.
// A versão da API do evento pode ser diferente da versão da biblioteca.
func (c *StripeClient) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
