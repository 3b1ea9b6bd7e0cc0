package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/infrastructure/migration"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/api"
	"github.com/vfg2006/sales-tracker-api/internal/api/handler"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/scheduler"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/backup"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/directory"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-tracker-api/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Aplica migrações, semeia a conta administradora e converte
	// credenciais legadas antes de aceitar requisições
	migrator := migration.NewMigrator(pgConn, cfg)
	if err := migrator.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações do banco de dados")
	}

	employeeRepo := repository.NewEmployeeRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	backupRepo := repository.NewBackupRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	directoryService := directory.NewService(employeeRepo, userRepo, cfg)
	sellingService := selling.NewService(saleRepo, employeeRepo)
	reportingService := reporting.NewService(saleRepo, goalRepo, employeeRepo)
	exportingService := exporting.NewService(saleRepo)
	backupService := backup.NewService(backupRepo, cfg)

	// Agendador de backups automáticos
	backupSyncService := scheduler.NewBackupSyncService(backupService, cfg)
	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backups")
	} else {
		logrus.Info("Agendador de backups iniciado com sucesso")
	}

	systemServices := handler.SystemServices{
		Conn:              pgConn,
		EmployeeRepo:      employeeRepo,
		UserRepo:          userRepo,
		SaleRepo:          saleRepo,
		GoalRepo:          goalRepo,
		BackupSyncService: backupSyncService,
	}

	server, err := api.New(
		cfg,
		authenticator,
		directoryService,
		sellingService,
		reportingService,
		exportingService,
		backupService,
		systemServices,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
