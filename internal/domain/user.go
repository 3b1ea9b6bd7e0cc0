package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis em ordem hierárquica: administrador > supervisor > vendedor.
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleVendor     = 3
)

// RoleAtLeast informa se currentRole satisfaz o papel mínimo exigido.
// IDs menores têm mais privilégio, então a comparação é invertida.
func RoleAtLeast(currentRole, requiredRole int) bool {
	if currentRole < RoleAdmin || currentRole > RoleVendor {
		return false
	}
	return currentRole <= requiredRole
}

func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "Administrator"
	case RoleSupervisor:
		return "Supervisor"
	case RoleVendor:
		return "Vendor"
	default:
		return "Unknown"
	}
}

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password,omitempty"`
	LegacySHA256 bool       `json:"-"`
	RoleID       int        `json:"role_id"`
	EmployeeID   *int       `json:"employee_id"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

type CreateUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RoleID     int    `json:"role_id"`
	EmployeeID *int   `json:"employee_id"`
}

type Claims struct {
	UserID         int
	UserName       string
	UserRoleID     int
	UserEmployeeID *int
	jwt.RegisteredClaims
}
