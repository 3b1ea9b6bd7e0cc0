package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testPayload() *domain.BackupPayload {
	email := "ana@example.com"
	return &domain.BackupPayload{
		Version:   domain.BackupPayloadVersion,
		CreatedAt: time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC),
		Employees: []domain.BackupEmployee{
			{ID: 1, PublicID: "a1b2c3", Name: "Ana", Email: &email, Department: "Store", Active: true},
		},
		Users: []domain.BackupUser{
			{ID: 1, Username: "ana", PasswordHash: "$2a$10$hash", RoleID: domain.RoleVendor, Active: true},
		},
		Sales: []domain.BackupSale{
			{ID: 1, PublicID: "s1s2s3s4s5", EmployeeID: 1, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), SelfLiquidating: 2},
		},
		Goals: []domain.BackupGoal{
			{ID: 1, EmployeeID: 1, Month: 3, Year: 2024, TargetUnits: 120},
		},
	}
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *mocks.MockBackupRepository) {
	t.Helper()

	mockBackupRepo := mocks.NewMockBackupRepository(ctrl)
	cfg := &config.Config{
		BackupSync: config.BackupSync{
			Directory:    t.TempDir(),
			MaxArtifacts: 10,
		},
	}

	service := NewService(mockBackupRepo, cfg)
	service.now = func() time.Time { return time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC) }

	return service, mockBackupRepo
}

func TestCreateBackup_ERestore_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockBackupRepo := newTestService(t, ctrl)
	mockBackupRepo.EXPECT().DumpAll().Return(testPayload(), nil)

	artifact, err := service.CreateBackup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "backup_20240320_103000.json.xz", artifact.Filename)
	assert.Greater(t, artifact.SizeBytes, int64(0))

	// Restauração devolve exatamente o payload gravado
	mockBackupRepo.EXPECT().
		RestoreAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *domain.BackupPayload) error {
			assert.Equal(t, testPayload(), payload)
			return nil
		})

	err = service.Restore(context.Background(), artifact.Filename)
	assert.NoError(t, err)
}

func TestListBackups_OrdenadoMaisRecentePrimeiro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)
	dir := service.cfg.BackupSync.Directory

	for _, name := range []string{
		"backup_20240101_000000.json.xz",
		"backup_20240301_120000.json.xz",
		"backup_20240201_060000.json.xz",
		"anotacoes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o640))
	}

	artifacts, err := service.ListBackups()
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, "backup_20240301_120000.json.xz", artifacts[0].Filename)
	assert.Equal(t, "backup_20240201_060000.json.xz", artifacts[1].Filename)
	assert.Equal(t, "backup_20240101_000000.json.xz", artifacts[2].Filename)
}

func TestListBackups_DiretorioInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)
	service.cfg.BackupSync.Directory = filepath.Join(service.cfg.BackupSync.Directory, "nao-existe")

	artifacts, err := service.ListBackups()
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestCreateBackup_ExpurgaArtefatosAntigos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockBackupRepo := newTestService(t, ctrl)
	service.cfg.BackupSync.MaxArtifacts = 2
	dir := service.cfg.BackupSync.Directory

	for _, name := range []string{
		"backup_20240101_000000.json.xz",
		"backup_20240102_000000.json.xz",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o640))
	}

	mockBackupRepo.EXPECT().DumpAll().Return(testPayload(), nil)

	_, err := service.CreateBackup(context.Background())
	require.NoError(t, err)

	artifacts, err := service.ListBackups()
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	// O mais antigo foi removido, o recém gerado permanece
	assert.Equal(t, "backup_20240320_103000.json.xz", artifacts[0].Filename)
	assert.Equal(t, "backup_20240102_000000.json.xz", artifacts[1].Filename)
}

func TestCreateBackup_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)

	// Simula um backup em andamento segurando o mutex
	service.mu.Lock()
	defer service.mu.Unlock()

	_, err := service.CreateBackup(context.Background())
	assert.True(t, errors.Is(err, ErrBackupInProgress))

	err = service.Restore(context.Background(), "backup_20240101_000000.json.xz")
	assert.True(t, errors.Is(err, ErrBackupInProgress))
}

func TestRestore_NomeInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)

	tests := []struct {
		name     string
		filename string
	}{
		{name: "caminho relativo", filename: "../../etc/passwd"},
		{name: "extensão errada", filename: "backup_20240101_000000.txt"},
		{name: "prefixo errado", filename: "dump_20240101_000000.json.xz"},
		{name: "vazio", filename: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Restore(context.Background(), tt.filename)
			assert.True(t, errors.Is(err, ErrInvalidArtifactName))
		})
	}
}

func TestRestore_ArtefatoNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)

	err := service.Restore(context.Background(), "backup_20240101_000000.json.xz")
	assert.True(t, errors.Is(err, ErrArtifactNotFound))
}

func TestRestore_ArtefatoCorrompido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(t, ctrl)
	dir := service.cfg.BackupSync.Directory

	filename := "backup_20240101_000000.json.xz"
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte("isto não é xz"), 0o640))

	err := service.Restore(context.Background(), filename)
	assert.True(t, errors.Is(err, ErrCorruptArtifact))
}
