package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/middleware"
)

// ExportSales gera o arquivo de vendas para download. O formato vem na
// query string: csv (padrão) ou xlsx. Vendedores exportam apenas os
// próprios registros
func ExportSales(service exporting.ExportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = exporting.FormatCSV
		}

		filter, err := parseSaleFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if userClaims.UserRoleID == domain.RoleVendor {
			if userClaims.UserEmployeeID == nil {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário sem empregado vinculado", nil)
				return
			}
			filter.EmployeeID = userClaims.UserEmployeeID
		}

		export, err := service.ExportSales(format, *filter)
		if err != nil {
			handleExportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename=\""+export.Filename+"\"")
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))

		if _, err := w.Write(export.Data); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar arquivo de exportação")
		}
	}
}

// handleExportingError converte erros do serviço de exportação na resposta da API
func handleExportingError(w http.ResponseWriter, err error) {
	var expErr *exporting.ExportingError
	if errors.As(err, &expErr) {
		apiErrors.WriteError(w, expErr.Code, expErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
