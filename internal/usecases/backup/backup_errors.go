package backup

import "github.com/pkg/errors"

var (
	// ErrArtifactNotFound indica artefato de backup inexistente
	ErrArtifactNotFound = errors.New("artefato de backup não encontrado")
	// ErrInvalidArtifactName indica nome de artefato fora do padrão
	ErrInvalidArtifactName = errors.New("nome de artefato inválido")
	// ErrCorruptArtifact indica artefato que não pôde ser lido ou decodificado
	ErrCorruptArtifact = errors.New("artefato de backup corrompido")
	// ErrBackupInProgress indica backup ou restauração já em andamento
	ErrBackupInProgress = errors.New("backup ou restauração já em andamento")
	// ErrDatabaseOperation indica erro ao acessar o banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
	// ErrStorageOperation indica erro de leitura ou escrita no diretório de backups
	ErrStorageOperation = errors.New("erro de armazenamento de backup")
)

// BackupError encapsula um erro do serviço de backup com código de API
type BackupError struct {
	Err     error
	Code    string
	Details string
}

func (e *BackupError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

func NewBackupError(baseErr error, code string, details string) *BackupError {
	return &BackupError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
