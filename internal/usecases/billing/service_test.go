package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/integrator/payment"
	paymentmocks "github.com/vfg2006/analytico-api/infrastructure/integrator/payment/mocks"
	"github.com/vfg2006/analytico-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *paymentmocks.MockBillingIntegrator, *mocks.MockSubscriptionRepository) {
	ctrl := gomock.NewController(t)
	integrator := paymentmocks.NewMockBillingIntegrator(ctrl)
	repo := mocks.NewMockSubscriptionRepository(ctrl)
	service := NewService(integrator, repo, config.Stripe{MonthlyPriceID: "price_m", YearlyPriceID: "price_y"})
	return service, integrator, repo
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var billingErr *BillingError
	require.True(t, errors.As(err, &billingErr), "esperava BillingError, veio %v", err)
	assert.Equal(t, code, billingErr.Code)
}

func TestService_CreateCheckoutSession(t *testing.T) {
	request := domain.CheckoutRequest{
		UserID:     7,
		Email:      "dono@loja.com",
		PlanID:     "monthly",
		SuccessURL: "https://app/sucesso",
		CancelURL:  "https://app/precos",
	}

	t.Run("reaproveita customer existente", func(t *testing.T) {
		service, integrator, repo := newTestService(t)
		repo.EXPECT().GetLatestByUser(gomock.Any(), 7).Return(&domain.Subscription{StripeCustomerID: "cus_antigo"}, nil)
		integrator.EXPECT().CreateCheckoutSession(gomock.Any(), payment.CheckoutParams{
			CustomerID: "cus_antigo",
			PriceID:    "price_m",
			PlanID:     "monthly",
			UserID:     7,
			SuccessURL: "https://app/sucesso?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:  "https://app/precos",
		}).Return(&payment.CheckoutSession{ID: "cs_1", URL: "https://checkout/cs_1"}, nil)

		resp, err := service.CreateCheckoutSession(context.Background(), request)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "cs_1", resp.SessionID)
		assert.Equal(t, "https://checkout/cs_1", resp.CheckoutURL)
	})

	t.Run("cria customer quando não existe", func(t *testing.T) {
		service, integrator, repo := newTestService(t)
		repo.EXPECT().GetLatestByUser(gomock.Any(), 7).Return(nil, nil)
		integrator.EXPECT().CreateCustomer(gomock.Any(), "dono@loja.com", 7).Return("cus_novo", nil)
		integrator.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error) {
				assert.Equal(t, "cus_novo", p.CustomerID)
				return &payment.CheckoutSession{ID: "cs_2"}, nil
			})

		_, err := service.CreateCheckoutSession(context.Background(), request)
		require.NoError(t, err)
	})

	t.Run("plano inválido", func(t *testing.T) {
		service, _, _ := newTestService(t)
		invalid := request
		invalid.PlanID = "vitalicio"

		_, err := service.CreateCheckoutSession(context.Background(), invalid)
		requireCode(t, err, apiErrors.ErrInvalidRequest)
	})

	t.Run("dados ausentes", func(t *testing.T) {
		service, _, _ := newTestService(t)
		_, err := service.CreateCheckoutSession(context.Background(), domain.CheckoutRequest{PlanID: "monthly"})
		requireCode(t, err, apiErrors.ErrMissingRequiredData)
	})

	t.Run("falha no provedor", func(t *testing.T) {
		service, integrator, repo := newTestService(t)
		repo.EXPECT().GetLatestByUser(gomock.Any(), 7).Return(nil, nil)
		integrator.EXPECT().CreateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("stripe fora"))

		_, err := service.CreateCheckoutSession(context.Background(), request)
		requireCode(t, err, apiErrors.ErrBillingProvider)
	})
}

func TestWithSessionID(t *testing.T) {
	assert.Equal(t, "https://app/ok?session_id={CHECKOUT_SESSION_ID}", withSessionID("https://app/ok"))
	assert.Equal(t, "https://app/ok?from=precos&session_id={CHECKOUT_SESSION_ID}", withSessionID("https://app/ok?from=precos"))
}

func TestService_SubscriptionStatus(t *testing.T) {
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *domain.Subscription
		want domain.SubscriptionStatus
	}{
		{
			name: "sem assinatura",
			want: domain.SubscriptionStatus{Status: "inactive"},
		},
		{
			name: "ativa",
			sub:  &domain.Subscription{Status: "active", PlanID: "yearly", StripeCustomerID: "cus_1", CurrentPeriodEnd: &periodEnd},
			want: domain.SubscriptionStatus{Active: true, Plan: "Plano Anual", Status: "active", CustomerID: "cus_1", NextBilling: &periodEnd},
		},
		{
			name: "cancelada não tem próxima cobrança",
			sub:  &domain.Subscription{Status: "canceled", PlanID: "monthly", PlanName: "Plano Mensal", CurrentPeriodEnd: &periodEnd},
			want: domain.SubscriptionStatus{Plan: "Plano Mensal", Status: "canceled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, repo := newTestService(t)
			repo.EXPECT().GetLatestByUser(gomock.Any(), 7).Return(tt.sub, nil)

			got, err := service.SubscriptionStatus(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestService_HandleWebhook(t *testing.T) {
	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    *domain.BillingEvent
		parseErr error
		setup    func(integrator *paymentmocks.MockBillingIntegrator, repo *mocks.MockSubscriptionRepository)
		wantCode string
	}{
		{
			name:     "assinatura inválida",
			parseErr: payment.ErrInvalidSignature,
			wantCode: apiErrors.ErrInvalidSignature,
		},
		{
			name: "checkout concluído grava assinatura",
			event: &domain.BillingEvent{
				ID:           "evt_1",
				Type:         "checkout.session.completed",
				Mode:         "subscription",
				CustomerID:   "cus_1",
				Subscription: &domain.ProviderSubscription{ID: "sub_1"},
				Metadata:     map[string]string{"user_id": "7", "plan_id": "trimestral"},
			},
			setup: func(integrator *paymentmocks.MockBillingIntegrator, repo *mocks.MockSubscriptionRepository) {
				integrator.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(&domain.ProviderSubscription{
					ID:                 "sub_1",
					Status:             "active",
					CurrentPeriodStart: periodStart,
					CurrentPeriodEnd:   periodEnd,
				}, nil)
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sub *domain.Subscription) error {
						assert.Equal(t, 7, sub.UserID)
						assert.Equal(t, "cus_1", sub.StripeCustomerID)
						assert.Equal(t, "Plano Desconhecido", sub.PlanName)
						assert.Equal(t, periodEnd, *sub.CurrentPeriodEnd)
						return nil
					})
			},
		},
		{
			name: "checkout sem user_id",
			event: &domain.BillingEvent{
				Type:         "checkout.session.completed",
				Mode:         "subscription",
				Subscription: &domain.ProviderSubscription{ID: "sub_1"},
			},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:  "checkout de pagamento avulso é ignorado",
			event: &domain.BillingEvent{Type: "checkout.session.completed", Mode: "payment"},
		},
		{
			name: "assinatura atualizada",
			event: &domain.BillingEvent{
				Type: "customer.subscription.updated",
				Subscription: &domain.ProviderSubscription{
					ID: "sub_1", Status: "past_due", CurrentPeriodEnd: periodEnd, CancelAtPeriodEnd: true,
				},
			},
			setup: func(_ *paymentmocks.MockBillingIntegrator, repo *mocks.MockSubscriptionRepository) {
				repo.EXPECT().UpdateByStripeID(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, sub *domain.Subscription) error {
						assert.Equal(t, "sub_1", sub.StripeSubscriptionID)
						assert.Equal(t, "past_due", sub.Status)
						assert.Nil(t, sub.CurrentPeriodStart)
						assert.True(t, sub.CancelAtPeriodEnd)
						return nil
					})
			},
		},
		{
			name:  "assinatura removida",
			event: &domain.BillingEvent{Type: "customer.subscription.deleted", Subscription: &domain.ProviderSubscription{ID: "sub_1"}},
			setup: func(_ *paymentmocks.MockBillingIntegrator, repo *mocks.MockSubscriptionRepository) {
				repo.EXPECT().MarkCanceled(gomock.Any(), "sub_1").Return(nil)
			},
		},
		{
			name:  "evento desconhecido",
			event: &domain.BillingEvent{Type: "invoice.paid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, integrator, repo := newTestService(t)
			integrator.EXPECT().ParseWebhook(gomock.Any(), []byte("{}"), "t=1,v1=x").Return(tt.event, tt.parseErr)
			if tt.setup != nil {
				tt.setup(integrator, repo)
			}

			err := service.HandleWebhook(context.Background(), []byte("{}"), "t=1,v1=x")

			if tt.wantCode != "" {
				requireCode(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
		})
	}
}
