package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

var startedAt = time.Now()

// SystemServices agrupa as dependências do painel de administração
type SystemServices struct {
	Conn              *postgres.Connection
	EmployeeRepo      repository.EmployeeRepository
	UserRepo          repository.UserRepository
	SaleRepo          repository.SaleRepository
	GoalRepo          repository.GoalRepository
	BackupSyncService *scheduler.BackupSyncService
}

type SystemInfoResponse struct {
	Uptime     string         `json:"uptime"`
	Database   string         `json:"database"`
	Employees  int            `json:"employees"`
	Users      int            `json:"users"`
	Sales      int            `json:"sales"`
	Goals      int            `json:"goals"`
	BackupSync map[string]any `json:"backup_sync"`
}

// GetSystemInfo retorna uptime, estado do banco, contagens das tabelas
// e o status do agendador de backups
func GetSystemInfo(services SystemServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := SystemInfoResponse{
			Uptime:   time.Since(startedAt).Round(time.Second).String(),
			Database: "ok",
		}

		if services.Conn != nil {
			if err := services.Conn.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("Banco de dados não respondeu ao ping")
				info.Database = "unavailable"
			}
		}

		var err error
		if info.Employees, err = services.EmployeeRepo.CountEmployees(); err != nil {
			logrus.WithError(err).Error("Erro ao contar empregados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco", nil)
			return
		}

		if info.Users, err = services.UserRepo.CountUsers(); err != nil {
			logrus.WithError(err).Error("Erro ao contar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco", nil)
			return
		}

		if info.Sales, err = services.SaleRepo.CountSales(); err != nil {
			logrus.WithError(err).Error("Erro ao contar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco", nil)
			return
		}

		if info.Goals, err = services.GoalRepo.CountGoals(); err != nil {
			logrus.WithError(err).Error("Erro ao contar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco", nil)
			return
		}

		if services.BackupSyncService != nil {
			info.BackupSync = services.BackupSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	}
}
