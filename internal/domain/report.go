package domain

import "time"

// CategoryTotals é o somatório por categoria de um período.
type CategoryTotals struct {
	SelfLiquidating int `json:"self_liquidating"`
	WeeklyOffer     int `json:"weekly_offer"`
	HouseBrand      int `json:"house_brand"`
	Additional      int `json:"additional"`
	Total           int `json:"total"`
}

// EmployeeTotal é uma linha do ranking de vendedores.
type EmployeeTotal struct {
	EmployeeID   int        `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Department   Department `json:"department"`
	Entries      int        `json:"entries"`
	Total        int        `json:"total"`
	Position     int        `json:"position"`
}

// DepartmentTotal é o somatório de unidades de um departamento.
type DepartmentTotal struct {
	Department Department `json:"department"`
	Total      int        `json:"total"`
}

// DailyTotal é um ponto da série diária. Dias sem registros não aparecem
// na série.
type DailyTotal struct {
	Date  time.Time `json:"date"`
	Total int       `json:"total"`
}
