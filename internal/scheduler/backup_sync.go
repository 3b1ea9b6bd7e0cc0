package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/backup"
)

// BackupSyncConfig representa a configuração do agendador de backups
type BackupSyncConfig struct {
	CronSchedule string
	Directory    string
	MaxArtifacts int
	SyncEnabled  bool
}

// BackupSyncService gerencia o agendamento e execução dos backups automáticos
type BackupSyncService struct {
	scheduler           *gocron.Scheduler
	config              BackupSyncConfig
	backupService       backup.BackupService
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewBackupSyncService cria uma nova instância do serviço de backup automático
func NewBackupSyncService(
	backupService backup.BackupService,
	appConfig *config.Config,
) *BackupSyncService {
	syncConfig := BackupSyncConfig{
		CronSchedule: appConfig.BackupSync.CronSchedule,
		Directory:    appConfig.BackupSync.Directory,
		MaxArtifacts: appConfig.BackupSync.MaxArtifacts,
		SyncEnabled:  appConfig.BackupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"backup_dir":    syncConfig.Directory,
		"max_artifacts": syncConfig.MaxArtifacts,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de backups carregada")

	return &BackupSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		backupService: backupService,
	}
}

// Start inicia o agendador
func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Backup automático desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de backups")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runBackup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup automático: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de backups")
		s.scheduler.Stop()
	}()

	return nil
}

// runBackup executa um backup agendado. Sobreposição com backup ou
// restauração manual é recusada pelo próprio serviço de backup.
func (s *BackupSyncService) runBackup(ctx context.Context) {
	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	logrus.Info("Iniciando backup agendado")

	artifact, err := s.backupService.CreateBackup(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar backup agendado")
		return
	}

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"artifact":   artifact.Filename,
		"size_bytes": artifact.SizeBytes,
		"duration":   time.Since(startTime).String(),
	}).Info("Backup agendado concluído")
}

// GetStatus retorna o status atual do agendador
func (s *BackupSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"backup_dir":             s.config.Directory,
		"max_artifacts":          s.config.MaxArtifacts,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
