package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

func RecordSale(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.RecordSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.RecordSale(userClaims, &req)
		if err != nil {
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	}
}

func ListSales(service selling.SellingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter, err := parseSaleFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entries, err := service.ListSales(userClaims, filter)
		if err != nil {
			handleSellingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// parseSaleFilter monta o filtro comum de listagens, relatórios e
// exportações a partir da query string
func parseSaleFilter(r *http.Request) (*domain.SaleFilter, error) {
	filter := &domain.SaleFilter{}
	query := r.URL.Query()

	if employeeIDStr := query.Get("employee_id"); employeeIDStr != "" {
		employeeID, err := strconv.Atoi(employeeIDStr)
		if err != nil {
			return nil, errors.New("employee_id inválido")
		}
		filter.EmployeeID = &employeeID
	}

	if departmentStr := query.Get("department"); departmentStr != "" {
		department := domain.Department(departmentStr)
		if !department.Valid() {
			return nil, errors.New("department inválido")
		}
		filter.Department = &department
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := utils.ParseDate(fromStr)
		if err != nil {
			return nil, errors.New("data inicial inválida")
		}
		filter.From = from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := utils.ParseDate(toStr)
		if err != nil {
			return nil, errors.New("data final inválida")
		}
		filter.To = to
	}

	return filter, nil
}

// handleSellingError converte erros do serviço de vendas na resposta da API
func handleSellingError(w http.ResponseWriter, err error) {
	var sellErr *selling.SellingError
	if errors.As(err, &sellErr) {
		apiErrors.WriteError(w, sellErr.Code, sellErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
