package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/billing"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"github.com/vfg2006/analytico-api/pkg/log"
	"github.com/vfg2006/analytico-api/pkg/middleware"
)

const maxWebhookBodySize = 64 << 10

type SubscriptionStatusRequest struct {
	UserID int `json:"user_id"`
}

type SubscriptionStatusResponse struct {
	Success      bool                       `json:"success"`
	Subscription *domain.SubscriptionStatus `json:"assinatura"`
	Message      string                     `json:"message"`
}

// sameUserOrAdmin impede que um cliente opere a cobrança de outro usuário.
// user_id ausente assume o usuário do token.
func sameUserOrAdmin(w http.ResponseWriter, r *http.Request, userID *int) bool {
	claims, ok := requireClaims(w, r)
	if !ok {
		return false
	}

	if *userID == 0 {
		*userID = claims.UserID
	}
	if *userID != claims.UserID && !middleware.IsAdmin(r) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não pode operar a assinatura de outro usuário", nil)
		return false
	}
	return true
}

func CreateCheckoutSession(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !sameUserOrAdmin(w, r, &req.UserID) {
			return
		}

		response, err := service.CreateCheckoutSession(r.Context(), req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar sessão de checkout")
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// CreatePortalSession só aceita o customer da própria assinatura, exceto para admins
func CreatePortalSession(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req domain.PortalRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !middleware.IsAdmin(r) {
			status, err := service.SubscriptionStatus(r.Context(), claims.UserID)
			if err != nil {
				handleError(w, r, err, "Erro ao buscar assinatura")
				return
			}
			if req.CustomerID == "" {
				req.CustomerID = status.CustomerID
			}
			if req.CustomerID != status.CustomerID {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Customer não pertence ao usuário", nil)
				return
			}
		}

		url, err := service.CreatePortalSession(r.Context(), req)
		if err != nil {
			handleError(w, r, err, "Erro ao criar sessão do portal")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":    true,
			"portal_url": url,
		})
	}
}

func GetSubscriptionStatus(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubscriptionStatusRequest
		if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !sameUserOrAdmin(w, r, &req.UserID) {
			return
		}

		status, err := service.SubscriptionStatus(r.Context(), req.UserID)
		if err != nil {
			handleError(w, r, err, "Erro ao verificar assinatura")
			return
		}

		message := "Assinatura ativa"
		if !status.Active {
			message = "Nenhuma assinatura ativa"
		}

		writeJSON(w, http.StatusOK, SubscriptionStatusResponse{
			Success:      true,
			Subscription: status,
			Message:      message,
		})
	}
}

// StripeWebhook recebe o corpo cru; a assinatura é verificada antes de qualquer leitura do evento
func StripeWebhook(service billing.Biller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao ler corpo do webhook")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := service.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
			handleError(w, r, err, "Erro ao processar webhook")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
	}
}
