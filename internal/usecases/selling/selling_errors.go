package selling

import "github.com/pkg/errors"

var (
	// ErrMissingRequiredData indica campos obrigatórios ausentes
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	// ErrNegativeCount indica contagem de categoria negativa
	ErrNegativeCount = errors.New("contagem de categoria não pode ser negativa")
	// ErrEmptyEntry indica registro de venda com todas as categorias zeradas
	ErrEmptyEntry = errors.New("registro de venda sem nenhuma unidade")
	// ErrEmployeeNotFound indica empregado inexistente ou inativo
	ErrEmployeeNotFound = errors.New("empregado não encontrado")
	// ErrNotOwnEmployee indica tentativa de registrar venda para outro empregado
	ErrNotOwnEmployee = errors.New("vendedor só registra vendas do próprio empregado")
	// ErrDatabaseOperation indica erro ao acessar o banco de dados
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
)

// SellingError encapsula um erro do serviço de vendas com código de API
type SellingError struct {
	Err     error
	Code    string
	Details string
}

func (e *SellingError) Error() string {
	if e.Details != "" {
		return e.Err.Error() + ": " + e.Details
	}
	return e.Err.Error()
}

func (e *SellingError) Unwrap() error {
	return e.Err
}

func NewSellingError(baseErr error, code string, details string) *SellingError {
	return &SellingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
