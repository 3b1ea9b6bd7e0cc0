package domain

import "time"

// CategoryCounts agrupa as quatro categorias de produto de um registro
// de venda. Contagens sempre não negativas.
type CategoryCounts struct {
	SelfLiquidating int `json:"self_liquidating"`
	WeeklyOffer     int `json:"weekly_offer"`
	HouseBrand      int `json:"house_brand"`
	Additional      int `json:"additional"`
}

// Total soma as quatro categorias.
func (c CategoryCounts) Total() int {
	return c.SelfLiquidating + c.WeeklyOffer + c.HouseBrand + c.Additional
}

// HasNegative informa se alguma categoria recebeu valor negativo.
func (c CategoryCounts) HasNegative() bool {
	return c.SelfLiquidating < 0 || c.WeeklyOffer < 0 || c.HouseBrand < 0 || c.Additional < 0
}

// SaleEntry é uma observação de unidades vendidas por um empregado em uma
// data. Registros são append-only: não existe update nem delete de vendas.
type SaleEntry struct {
	ID         int            `json:"id"`
	PublicID   string         `json:"public_id"`
	EmployeeID int            `json:"employee_id"`
	Date       time.Time      `json:"date"`
	Counts     CategoryCounts `json:"counts"`
	Comments   string         `json:"comments,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`

	// Preenchidos por join com employees nas listagens e exportações.
	EmployeeName string     `json:"employee_name,omitempty"`
	Department   Department `json:"department,omitempty"`
}

// RecordSaleRequest é o payload de criação de um registro de venda. A
// data chega como string no formato 2006-01-02.
type RecordSaleRequest struct {
	EmployeeID int            `json:"employee_id"`
	Date       string         `json:"date"`
	Counts     CategoryCounts `json:"counts"`
	Comments   string         `json:"comments,omitempty"`
}

// SaleFilter restringe listagens e agregações de vendas. Datas nulas
// significam "desde sempre" / "até sempre".
type SaleFilter struct {
	EmployeeID *int
	Department *Department
	From       *time.Time
	To         *time.Time
}
