package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stripe/stripe-go/v76"
	"github.com/vfg2006/analytico-api/infrastructure/integrator/payment/stripeclient"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/log"
)

var ErrInvalidSignature = errors.New("assinatura do webhook inválida")

type CheckoutParams struct {
	CustomerID string
	PriceID    string
	PlanID     string
	UserID     int
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// BillingIntegrator traduz o provedor de pagamento para os tipos do domínio
type BillingIntegrator interface {
	CreateCustomer(ctx context.Context, email string, userID int) (string, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.ProviderSubscription, error)
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*domain.BillingEvent, error)
}

type StripeIntegrator struct {
	Client stripeclient.Client
}

func New(client stripeclient.Client) *StripeIntegrator {
	return &StripeIntegrator{Client: client}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *StripeIntegrator) CreateCustomer(ctx context.Context, email string, userID int) (string, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.AddMetadata("user_id", strconv.Itoa(userID))

	customer, err := s.Client.CreateCustomer(params)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("stripe: falha ao criar customer")
		return "", fmt.Errorf("erro ao criar customer: %w", err)
	}

	return customer.ID, nil
}

func (s *StripeIntegrator) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	metadata := map[string]string{
		"user_id": strconv.Itoa(p.UserID),
		"plan_id": p.PlanID,
	}

	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(p.CustomerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(p.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:       stripe.String(p.SuccessURL),
		CancelURL:        stripe.String(p.CancelURL),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{Metadata: metadata},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	session, err := s.Client.CreateCheckoutSession(params)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"user_id": p.UserID,
			"plan_id": p.PlanID,
		}).Error("stripe: falha ao criar sessão de checkout")
		return nil, fmt.Errorf("erro ao criar sessão de checkout: %w", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (s *StripeIntegrator) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	session, err := s.Client.CreatePortalSession(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("stripe: falha ao criar sessão do portal")
		return "", fmt.Errorf("erro ao criar sessão do portal: %w", err)
	}

	return session.URL, nil
}

func (s *StripeIntegrator) GetSubscription(ctx context.Context, subscriptionID string) (*domain.ProviderSubscription, error) {
	sub, err := s.Client.GetSubscription(subscriptionID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("subscription_id", subscriptionID).Error("stripe: falha ao buscar assinatura")
		return nil, fmt.Errorf("erro ao buscar assinatura: %w", err)
	}

	return FactorySubscription(sub), nil
}

func (s *StripeIntegrator) ParseWebhook(ctx context.Context, payload []byte, signature string) (*domain.BillingEvent, error) {
	if signature == "" {
		return nil, ErrInvalidSignature
	}

	event, err := s.Client.ConstructEvent(payload, signature)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("stripe: assinatura do webhook rejeitada")
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	billingEvent := &domain.BillingEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return billingEvent, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("erro ao decodificar sessão de checkout: %w", err)
		}
		billingEvent.Mode = string(session.Mode)
		billingEvent.Metadata = session.Metadata
		if session.Customer != nil {
			billingEvent.CustomerID = session.Customer.ID
		}
		if session.Subscription != nil {
			billingEvent.Subscription = &domain.ProviderSubscription{ID: session.Subscription.ID}
		}

	case stripe.EventTypeCustomerSubscriptionUpdated, stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("erro ao decodificar assinatura: %w", err)
		}
		billingEvent.Subscription = FactorySubscription(&sub)
		billingEvent.CustomerID = billingEvent.Subscription.CustomerID
		billingEvent.Metadata = sub.Metadata
	}

	return billingEvent, nil
}

func FactorySubscription(sub *stripe.Subscription) *domain.ProviderSubscription {
	converted := &domain.ProviderSubscription{
		ID:                 sub.ID,
		Status:             string(sub.Status),
		CurrentPeriodStart: unixToTime(sub.CurrentPeriodStart),
		CurrentPeriodEnd:   unixToTime(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		Metadata:           sub.Metadata,
	}
	if sub.Customer != nil {
		converted.CustomerID = sub.Customer.ID
	}
	return converted
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
