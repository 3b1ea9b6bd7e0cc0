package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate indica violação de unicidade (código 23505 do Postgres).
// Os serviços convertem para o erro de conflito do domínio.
var ErrDuplicate = errors.New("registro duplicado")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
