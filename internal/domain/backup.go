package domain

import "time"

// BackupPayloadVersion identifica o formato do artefato de backup.
const BackupPayloadVersion = 1

// BackupPayload é o dump lógico completo das quatro tabelas do sistema.
// As linhas carregam todas as colunas, inclusive hashes de senha, para
// que a restauração devolva o banco exatamente ao estado do backup.
type BackupPayload struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`

	Employees []BackupEmployee `json:"employees"`
	Users     []BackupUser     `json:"users"`
	Sales     []BackupSale     `json:"sales"`
	Goals     []BackupGoal     `json:"goals"`
}

type BackupEmployee struct {
	ID         int       `json:"id"`
	PublicID   string    `json:"public_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Department string    `json:"department"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BackupUser struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password_hash"`
	LegacySHA256 bool       `json:"legacy_sha256"`
	RoleID       int        `json:"role_id"`
	EmployeeID   *int       `json:"employee_id"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

type BackupSale struct {
	ID              int       `json:"id"`
	PublicID        string    `json:"public_id"`
	EmployeeID      int       `json:"employee_id"`
	Date            time.Time `json:"sale_date"`
	SelfLiquidating int       `json:"self_liquidating"`
	WeeklyOffer     int       `json:"weekly_offer"`
	HouseBrand      int       `json:"house_brand"`
	Additional      int       `json:"additional"`
	Comments        string    `json:"comments"`
	CreatedAt       time.Time `json:"created_at"`
}

type BackupGoal struct {
	ID          int `json:"id"`
	EmployeeID  int `json:"employee_id"`
	Month       int `json:"month"`
	Year        int `json:"year"`
	TargetUnits int `json:"target_units"`
}

// BackupArtifact descreve um arquivo de backup disponível em disco.
type BackupArtifact struct {
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
