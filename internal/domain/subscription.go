package domain

import "time"

const (
	SubscriptionActive     = "active"
	SubscriptionCanceled   = "canceled"
	SubscriptionPastDue    = "past_due"
	SubscriptionUnpaid     = "unpaid"
	SubscriptionIncomplete = "incomplete"
	SubscriptionTrialing   = "trialing"

	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

var PlanNames = map[string]string{
	PlanMonthly: "Plano Mensal",
	PlanYearly:  "Plano Anual",
}

const UnknownPlanName = "Plano Desconhecido"

type Subscription struct {
	ID                   string     `json:"id"`
	UserID               int        `json:"user_id"`
	StripeCustomerID     string     `json:"stripe_customer_id"`
	StripeSubscriptionID string     `json:"stripe_subscription_id"`
	Status               string     `json:"status"`
	PlanID               string     `json:"plan_id"`
	PlanName             string     `json:"plan_name"`
	CurrentPeriodStart   *time.Time `json:"current_period_start"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	CancelAtPeriodEnd    bool       `json:"cancel_at_period_end"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// IsActive considera trialing como assinatura válida
func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

type CheckoutRequest struct {
	UserID     int    `json:"user_id"`
	Email      string `json:"email"`
	PlanID     string `json:"plan_id"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type CheckoutResponse struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}

type PortalRequest struct {
	CustomerID string `json:"customer_id"`
	ReturnURL  string `json:"return_url"`
}

type SubscriptionStatus struct {
	Active      bool       `json:"ativa"`
	Plan        string     `json:"plano"`
	NextBilling *time.Time `json:"proxima_cobranca"`
	Status      string     `json:"status"`
	CustomerID  string     `json:"customer_id,omitempty"`
}

// BillingEvent é a forma neutra de um evento de webhook já verificado
type BillingEvent struct {
	ID           string
	Type         string
	Mode         string
	CustomerID   string
	Subscription *ProviderSubscription
	Metadata     map[string]string
}

// ProviderSubscription é a assinatura como o provedor de pagamento a descreve
type ProviderSubscription struct {
	ID                 string
	CustomerID         string
	Status             string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	Metadata           map[string]string
}
