package reporting

import "github.com/pkg/errors"

var (
	// ErrMissingRequiredData indica campos obrigatórios ausentes
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	// ErrInvalidPeriod indica mês ou ano fora da faixa aceita
	ErrInvalidPeriod = errors.New("período inválido")
	// ErrInvalidTarget indica meta com unidades negativas
	ErrInvalidTarget = errors.New("meta de unidades não pode ser negativa")
	// ErrEmployeeNotFound indica empregado inexistente
	ErrEmployeeNotFound = errors.New("empregado não encontrado")
	// ErrDatabaseOperation indica erro ao acessar o banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)

// ReportingError encapsula um erro do serviço de relatórios com código de API
type ReportingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(baseErr error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
