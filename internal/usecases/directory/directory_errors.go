package directory

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidDepartment   = errors.New("departamento inválido")
	ErrInvalidRole         = errors.New("papel inválido")
	ErrEmployeeNotFound    = errors.New("empregado não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")

	// Erros de conflito
	ErrNameExists           = errors.New("já existe empregado com este nome")
	ErrUsernameExists       = errors.New("já existe usuário com este username")
	ErrEmployeeHasAccount   = errors.New("empregado já possui conta ativa")
	ErrSeedAdminProtected   = errors.New("a conta administradora semeada não pode ser removida")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// DirectoryError é um erro com contexto adicional do diretório
type DirectoryError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DirectoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// NewDirectoryError cria um novo erro do diretório
func NewDirectoryError(baseErr error, code string, details string) *DirectoryError {
	return &DirectoryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
