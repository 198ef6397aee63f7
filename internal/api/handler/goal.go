package handler

import (
	"net/http"

	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/internal/usecases/catalog"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
)

func ListGoals(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		goals, err := service.ListGoals(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, http.StatusOK, goals)
	}
}

func CreateGoal(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var goal domain.Goal
		if err := decodeBody(w, r, &goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		goal.ID = ""
		goal.CompanyID = companyID

		created, err := service.CreateGoal(r.Context(), companyID, &goal)
		if err != nil {
			handleError(w, r, err, "Erro ao criar meta")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateGoal(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		var goal domain.Goal
		if err := decodeBody(w, r, &goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		goal.ID = param(r, "id")
		goal.CompanyID = companyID

		updated, err := service.UpdateGoal(r.Context(), companyID, &goal)
		if err != nil {
			handleError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteGoal(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		if err := service.DeleteGoal(r.Context(), companyID, param(r, "id")); err != nil {
			handleError(w, r, err, "Erro ao remover meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetGoalProgress(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID := param(r, "empresa_id")
		if _, ok := authorizeCompany(w, r, service, companyID); !ok {
			return
		}

		progress, err := service.GoalProgress(r.Context(), companyID)
		if err != nil {
			handleError(w, r, err, "Erro ao calcular progresso das metas")
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}
