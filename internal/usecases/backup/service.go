package backup

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// artifactPattern valida nomes de artefato antes de tocar o disco, o
// nome vem do cliente na restauração.
var artifactPattern = regexp.MustCompile(`^backup_\d{8}_\d{6}\.json\.xz$`)

// BackupService gera, lista e restaura artefatos de backup. O artefato
// é o dump lógico das quatro tabelas em JSON comprimido com xz.
//
// Backup e restauração são serializados por um mutex de processo. Em
// caso de escritas concorrentes entre a geração do dump e a
// restauração, vale a última escrita.
type BackupService interface {
	CreateBackup(ctx context.Context) (*domain.BackupArtifact, error)
	ListBackups() ([]*domain.BackupArtifact, error)
	Restore(ctx context.Context, filename string) error
}

type Service struct {
	backupRepo repository.BackupRepository
	cfg        *config.Config

	mu  sync.Mutex
	now func() time.Time
}

func NewService(backupRepo repository.BackupRepository, cfg *config.Config) *Service {
	return &Service{
		backupRepo: backupRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) CreateBackup(ctx context.Context) (*domain.BackupArtifact, error) {
	if !s.mu.TryLock() {
		return nil, NewBackupError(ErrBackupInProgress, errorcodes.ErrConflict, "Backup ou restauração já em andamento")
	}
	defer s.mu.Unlock()

	payload, err := s.backupRepo.DumpAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar dump de backup")
		return nil, NewBackupError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao gerar dump")
	}

	if err := os.MkdirAll(s.cfg.BackupSync.Directory, 0o750); err != nil {
		logrus.WithError(err).Error("Erro ao criar diretório de backups")
		return nil, NewBackupError(ErrStorageOperation, errorcodes.ErrInternalServer, "Erro ao criar diretório de backups")
	}

	filename := "backup_" + s.now().Format("20060102_150405") + ".json.xz"
	path := filepath.Join(s.cfg.BackupSync.Directory, filename)

	if err := writeArtifact(path, payload); err != nil {
		logrus.WithError(err).Error("Erro ao escrever artefato de backup")
		return nil, NewBackupError(ErrStorageOperation, errorcodes.ErrInternalServer, "Erro ao escrever artefato")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, NewBackupError(ErrStorageOperation, errorcodes.ErrInternalServer, "Erro ao inspecionar artefato")
	}

	s.pruneOldArtifacts()

	logrus.WithFields(logrus.Fields{
		"artifact":   filename,
		"size_bytes": info.Size(),
		"employees":  len(payload.Employees),
		"users":      len(payload.Users),
		"sales":      len(payload.Sales),
		"goals":      len(payload.Goals),
	}).Info("Backup gerado")

	return &domain.BackupArtifact{
		Filename:  filename,
		SizeBytes: info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// ListBackups enumera os artefatos do diretório, mais recente primeiro.
func (s *Service) ListBackups() ([]*domain.BackupArtifact, error) {
	entries, err := os.ReadDir(s.cfg.BackupSync.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.BackupArtifact{}, nil
		}
		logrus.WithError(err).Error("Erro ao listar diretório de backups")
		return nil, NewBackupError(ErrStorageOperation, errorcodes.ErrInternalServer, "Erro ao listar backups")
	}

	artifacts := make([]*domain.BackupArtifact, 0)
	for _, entry := range entries {
		if entry.IsDir() || !artifactPattern.MatchString(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		artifacts = append(artifacts, &domain.BackupArtifact{
			Filename:  entry.Name(),
			SizeBytes: info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Filename > artifacts[j].Filename
	})

	return artifacts, nil
}

// Restore substitui todo o conteúdo do banco pelo artefato indicado,
// em uma única transação. O estado atual é descartado por inteiro.
func (s *Service) Restore(ctx context.Context, filename string) error {
	if !artifactPattern.MatchString(filename) {
		return NewBackupError(ErrInvalidArtifactName, errorcodes.ErrInvalidFormat, "Nome de artefato inválido: "+filename)
	}

	if !s.mu.TryLock() {
		return NewBackupError(ErrBackupInProgress, errorcodes.ErrConflict, "Backup ou restauração já em andamento")
	}
	defer s.mu.Unlock()

	path := filepath.Join(s.cfg.BackupSync.Directory, filename)

	payload, err := readArtifact(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewBackupError(ErrArtifactNotFound, errorcodes.ErrInvalidRequest, "Artefato não encontrado: "+filename)
		}
		logrus.WithError(err).Error("Erro ao ler artefato de backup")
		return NewBackupError(ErrCorruptArtifact, errorcodes.ErrInvalidFormat, "Artefato corrompido: "+filename)
	}

	if err := s.backupRepo.RestoreAll(ctx, payload); err != nil {
		logrus.WithError(err).Error("Erro ao restaurar backup")
		return NewBackupError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao restaurar backup")
	}

	logrus.WithFields(logrus.Fields{
		"artifact":  filename,
		"employees": len(payload.Employees),
		"users":     len(payload.Users),
		"sales":     len(payload.Sales),
		"goals":     len(payload.Goals),
	}).Info("Backup restaurado")

	return nil
}

// pruneOldArtifacts mantém no máximo MaxArtifacts arquivos no
// diretório. Falhas aqui não invalidam o backup recém gerado.
func (s *Service) pruneOldArtifacts() {
	max := s.cfg.BackupSync.MaxArtifacts
	if max <= 0 {
		return
	}

	artifacts, err := s.ListBackups()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao listar artefatos para expurgo")
		return
	}

	for _, artifact := range artifacts[minInt(max, len(artifacts)):] {
		path := filepath.Join(s.cfg.BackupSync.Directory, artifact.Filename)
		if err := os.Remove(path); err != nil {
			logrus.WithError(err).Warnf("Erro ao expurgar artefato %s", artifact.Filename)
			continue
		}
		logrus.WithField("artifact", artifact.Filename).Info("Artefato de backup expurgado")
	}
}

func writeArtifact(path string, payload *domain.BackupPayload) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	compressor, err := xz.NewWriter(file)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(compressor).Encode(payload); err != nil {
		return err
	}

	if err := compressor.Close(); err != nil {
		return err
	}

	return file.Close()
}

func readArtifact(path string) (*domain.BackupPayload, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decompressor, err := xz.NewReader(file)
	if err != nil {
		return nil, err
	}

	var payload domain.BackupPayload
	if err := json.NewDecoder(decompressor).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
