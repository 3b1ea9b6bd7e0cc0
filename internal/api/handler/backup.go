package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/backup"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

type RestoreBackupRequest struct {
	Filename string `json:"filename"`
}

func CreateBackup(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artifact, err := service.CreateBackup(r.Context())
		if err != nil {
			handleBackupError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(artifact)
	}
}

func ListBackups(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artifacts, err := service.ListBackups()
		if err != nil {
			handleBackupError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(artifacts)
	}
}

// RestoreBackup substitui todo o conteúdo do banco pelo artefato
// indicado. Operação destrutiva, restrita a administradores
func RestoreBackup(service backup.BackupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RestoreBackupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Filename == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do artefato é obrigatório", nil)
			return
		}

		if err := service.Restore(r.Context(), req.Filename); err != nil {
			handleBackupError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleBackupError converte erros do serviço de backup na resposta da API
func handleBackupError(w http.ResponseWriter, err error) {
	var bkpErr *backup.BackupError
	if errors.As(err, &bkpErr) {
		apiErrors.WriteError(w, bkpErr.Code, bkpErr.Error(), nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
