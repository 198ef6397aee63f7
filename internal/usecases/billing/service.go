package billing

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/analytico-api/infrastructure/integrator/payment"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/metrics"
)

const (
	eventCheckoutCompleted   = "checkout.session.completed"
	eventSubscriptionUpdated = "customer.subscription.updated"
	eventSubscriptionDeleted = "customer.subscription.deleted"

	sessionIDPlaceholder = "session_id={CHECKOUT_SESSION_ID}"
	statusNone           = "inactive"
)

type Biller interface {
	CreateCheckoutSession(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error)
	CreatePortalSession(ctx context.Context, request domain.PortalRequest) (string, error)
	SubscriptionStatus(ctx context.Context, userID int) (*domain.SubscriptionStatus, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type Service struct {
	integrator       payment.BillingIntegrator
	subscriptionRepo repository.SubscriptionRepository
	priceIDs         map[string]string
}

func NewService(integrator payment.BillingIntegrator, subscriptionRepo repository.SubscriptionRepository, cfg config.Stripe) *Service {
	return &Service{
		integrator:       integrator,
		subscriptionRepo: subscriptionRepo,
		priceIDs: map[string]string{
			domain.PlanMonthly: cfg.MonthlyPriceID,
			domain.PlanYearly:  cfg.YearlyPriceID,
		},
	}
}

// PlanName devolve o nome exibido do plano
func PlanName(planID string) string {
	if name, ok := domain.PlanNames[planID]; ok {
		return name
	}
	return domain.UnknownPlanName
}

func withSessionID(successURL string) string {
	if strings.Contains(successURL, "?") {
		return successURL + "&" + sessionIDPlaceholder
	}
	return successURL + "?" + sessionIDPlaceholder
}

func (s *Service) CreateCheckoutSession(ctx context.Context, request domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if request.UserID == 0 || request.Email == "" || request.PlanID == "" {
		return nil, NewBillingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "user_id, email e plan_id são obrigatórios")
	}

	priceID := s.priceIDs[request.PlanID]
	if priceID == "" {
		return nil, NewUserBillingError(ErrInvalidPlan, apiErrors.ErrInvalidRequest, request.UserID, request.PlanID)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id": request.UserID,
		"plan_id": request.PlanID,
	})

	existing, err := s.subscriptionRepo.GetLatestByUser(ctx, request.UserID)
	if err != nil {
		logger.WithError(err).Error("billing: falha ao buscar assinatura existente")
		return nil, NewUserBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.UserID, "Erro ao buscar assinatura")
	}

	var customerID string
	if existing != nil && existing.StripeCustomerID != "" {
		customerID = existing.StripeCustomerID
	} else {
		customerID, err = s.integrator.CreateCustomer(ctx, request.Email, request.UserID)
		if err != nil {
			return nil, NewUserBillingError(ErrProvider, apiErrors.ErrBillingProvider, request.UserID, err.Error())
		}
	}

	session, err := s.integrator.CreateCheckoutSession(ctx, payment.CheckoutParams{
		CustomerID: customerID,
		PriceID:    priceID,
		PlanID:     request.PlanID,
		UserID:     request.UserID,
		SuccessURL: withSessionID(request.SuccessURL),
		CancelURL:  request.CancelURL,
	})
	if err != nil {
		return nil, NewUserBillingError(ErrProvider, apiErrors.ErrBillingProvider, request.UserID, err.Error())
	}

	logger.WithField("session_id", session.ID).Info("billing: sessão de checkout criada")

	return &domain.CheckoutResponse{
		Success:     true,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

func (s *Service) CreatePortalSession(ctx context.Context, request domain.PortalRequest) (string, error) {
	if request.CustomerID == "" {
		return "", NewBillingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "customer_id é obrigatório")
	}

	url, err := s.integrator.CreatePortalSession(ctx, request.CustomerID, request.ReturnURL)
	if err != nil {
		return "", NewBillingError(ErrProvider, apiErrors.ErrBillingProvider, err.Error())
	}

	return url, nil
}

// SubscriptionStatus lê o estado gravado pelos webhooks
func (s *Service) SubscriptionStatus(ctx context.Context, userID int) (*domain.SubscriptionStatus, error) {
	if userID == 0 {
		return nil, NewBillingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "user_id é obrigatório")
	}

	sub, err := s.subscriptionRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("billing: falha ao buscar assinatura")
		return nil, NewUserBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar assinatura")
	}

	if sub == nil {
		return &domain.SubscriptionStatus{Status: statusNone}, nil
	}

	planName := sub.PlanName
	if planName == "" {
		planName = PlanName(sub.PlanID)
	}

	status := &domain.SubscriptionStatus{
		Active:     sub.IsActive(),
		Plan:       planName,
		Status:     sub.Status,
		CustomerID: sub.StripeCustomerID,
	}
	if status.Active {
		status.NextBilling = sub.CurrentPeriodEnd
	}

	return status, nil
}

func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.integrator.ParseWebhook(ctx, payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			return NewBillingError(ErrInvalidSignature, apiErrors.ErrInvalidSignature, "")
		}
		return NewBillingError(ErrProvider, apiErrors.ErrInvalidRequest, err.Error())
	}

	metrics.WebhookEvents.WithLabelValues(event.Type).Inc()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
	})
	logger.Info("billing: processando evento do webhook")

	switch event.Type {
	case eventCheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, event)
	case eventSubscriptionUpdated:
		return s.handleSubscriptionUpdated(ctx, event)
	case eventSubscriptionDeleted:
		if event.Subscription == nil {
			return nil
		}
		if err := s.subscriptionRepo.MarkCanceled(ctx, event.Subscription.ID); err != nil {
			logger.WithError(err).Error("billing: falha ao cancelar assinatura")
			return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao cancelar assinatura")
		}
	default:
		logger.Debug("billing: evento não tratado")
	}

	return nil
}

func (s *Service) handleCheckoutCompleted(ctx context.Context, event *domain.BillingEvent) error {
	if event.Mode != "subscription" || event.Subscription == nil || event.Subscription.ID == "" {
		return nil
	}

	userID, err := strconv.Atoi(event.Metadata["user_id"])
	if err != nil || userID == 0 {
		return NewBillingError(ErrMissingUserMetadata, apiErrors.ErrMissingRequiredData, event.ID)
	}

	planID := event.Metadata["plan_id"]
	if planID == "" {
		planID = domain.PlanMonthly
	}

	providerSub, err := s.integrator.GetSubscription(ctx, event.Subscription.ID)
	if err != nil {
		return NewUserBillingError(ErrProvider, apiErrors.ErrBillingProvider, userID, err.Error())
	}

	customerID := event.CustomerID
	if customerID == "" {
		customerID = providerSub.CustomerID
	}

	sub := &domain.Subscription{
		UserID:               userID,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: providerSub.ID,
		Status:               providerSub.Status,
		PlanID:               planID,
		PlanName:             PlanName(planID),
		CurrentPeriodStart:   optionalTime(providerSub.CurrentPeriodStart),
		CurrentPeriodEnd:     optionalTime(providerSub.CurrentPeriodEnd),
		CancelAtPeriodEnd:    providerSub.CancelAtPeriodEnd,
	}

	if err := s.subscriptionRepo.Upsert(ctx, sub); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("billing: falha ao gravar assinatura")
		return NewUserBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao gravar assinatura")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":         userID,
		"subscription_id": sub.StripeSubscriptionID,
	}).Info("billing: assinatura criada ou atualizada")
	return nil
}

func (s *Service) handleSubscriptionUpdated(ctx context.Context, event *domain.BillingEvent) error {
	if event.Subscription == nil {
		return nil
	}

	sub := &domain.Subscription{
		StripeSubscriptionID: event.Subscription.ID,
		Status:               event.Subscription.Status,
		CurrentPeriodStart:   optionalTime(event.Subscription.CurrentPeriodStart),
		CurrentPeriodEnd:     optionalTime(event.Subscription.CurrentPeriodEnd),
		CancelAtPeriodEnd:    event.Subscription.CancelAtPeriodEnd,
	}

	if err := s.subscriptionRepo.UpdateByStripeID(ctx, sub); err != nil {
		log.ForContext(ctx).WithError(err).Error("billing: falha ao atualizar assinatura")
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao atualizar assinatura")
	}
	return nil
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
