package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// SetGoal grava a meta mensal do empregado. Gravações repetidas para o
// mesmo período substituem a meta anterior
func SetGoal(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetGoal(&goal); err != nil {
			handleReportingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListGoals(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		goals, err := service.ListGoals(month, year)
		if err != nil {
			handleReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}
