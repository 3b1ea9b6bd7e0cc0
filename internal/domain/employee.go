package domain

import "time"

// Department é o agrupamento organizacional de um empregado,
// usado nos relatórios agregados.
type Department string

const (
	DepartmentDrugstore        Department = "Drugstore"
	DepartmentMedicalEquipment Department = "MedicalEquipment"
	DepartmentStore            Department = "Store"
	DepartmentRegisters        Department = "Registers"
)

// Departments lista os departamentos válidos na ordem de exibição.
var Departments = []Department{
	DepartmentDrugstore,
	DepartmentMedicalEquipment,
	DepartmentStore,
	DepartmentRegisters,
}

func (d Department) Valid() bool {
	for _, dep := range Departments {
		if d == dep {
			return true
		}
	}
	return false
}

type Employee struct {
	ID         int        `json:"id"`
	PublicID   string     `json:"public_id"`
	Name       string     `json:"name"`
	Email      *string    `json:"email"`
	Department Department `json:"department"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	Name       string     `json:"name"`
	Email      *string    `json:"email"`
	Department Department `json:"department"`
}
