package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/directory"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

type SetUserActiveRequest struct {
	Active bool `json:"active"`
}

func ListUsers(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUserAccounts()
		if err != nil {
			handleDirectoryError(w, err)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func CreateUser(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUserAccount(&req)
		if err != nil {
			handleDirectoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

// SetUserActive ativa ou desativa uma conta de usuário
func SetUserActive(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := httprouter.ParamsFromContext(r.Context()).ByName("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Username não fornecido", nil)
			return
		}

		var req SetUserActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetAccountActive(username, req.Active); err != nil {
			handleDirectoryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteUser(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := httprouter.ParamsFromContext(r.Context()).ByName("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Username não fornecido", nil)
			return
		}

		if err := service.DeleteUserAccount(username); err != nil {
			handleDirectoryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleDirectoryError converte erros do serviço de cadastros na resposta da API
func handleDirectoryError(w http.ResponseWriter, err error) {
	var dirErr *directory.DirectoryError
	if errors.As(err, &dirErr) {
		apiErrors.WriteError(w, dirErr.Code, dirErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
