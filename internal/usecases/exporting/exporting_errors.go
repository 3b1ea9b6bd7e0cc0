package exporting

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFormat indica formato de exportação desconhecido
	ErrUnsupportedFormat = errors.New("formato de exportação não suportado")
	// ErrDatabaseOperation indica erro ao acessar o banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
	// ErrRenderFailed indica falha ao gerar o arquivo de exportação
	ErrRenderFailed = errors.New("erro ao gerar arquivo de exportação")
)

// ExportingError encapsula um erro do serviço de exportação com código de API
type ExportingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExportingError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *ExportingError) Unwrap() error {
	return e.Err
}

func NewExportingError(baseErr error, code string, details string) *ExportingError {
	return &ExportingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
