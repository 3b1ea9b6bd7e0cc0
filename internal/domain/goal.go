package domain

// Goal é a meta mensal de unidades de um empregado. Única por
// (empregado, mês, ano); gravações posteriores substituem a anterior.
type Goal struct {
	ID          int `json:"id"`
	EmployeeID  int `json:"employee_id"`
	Month       int `json:"month"`
	Year        int `json:"year"`
	TargetUnits int `json:"target_units"`

	EmployeeName string     `json:"employee_name,omitempty"`
	Department   Department `json:"department,omitempty"`
}

// GoalProgress compara o realizado do período com a meta. Percent não é
// limitado a 100: metas superadas reportam o valor real.
type GoalProgress struct {
	EmployeeID int     `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	Achieved   int     `json:"achieved"`
	Target     int     `json:"target"`
	Percent    float64 `json:"percent"`
}
