package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const goalsTable = "goals"

type GoalRepository interface {
	UpsertGoal(goal *domain.Goal) error
	GetGoal(employeeID, month, year int) (*domain.Goal, error)
	ListGoals(month, year int) ([]*domain.Goal, error)
	CountGoals() (int, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

// UpsertGoal grava a meta do período. A última gravação substitui a
// anterior para o mesmo (empregado, mês, ano).
func (r *goalRepository) UpsertGoal(goal *domain.Goal) error {
	query, args, err := squirrel.
		Insert(goalsTable).
		Columns("employee_id", "month", "year", "target_units").
		Values(goal.EmployeeID, goal.Month, goal.Year, goal.TargetUnits).
		Suffix(`
			ON CONFLICT (employee_id, month, year) DO UPDATE SET
				target_units = EXCLUDED.target_units
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *goalRepository) GetGoal(employeeID, month, year int) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select("g.id", "g.employee_id", "g.month", "g.year", "g.target_units").
		From(goalsTable + " g").
		Where(squirrel.Eq{"g.employee_id": employeeID, "g.month": month, "g.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var goal domain.Goal
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.EmployeeID,
		&goal.Month,
		&goal.Year,
		&goal.TargetUnits,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *goalRepository) ListGoals(month, year int) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select("g.id", "g.employee_id", "g.month", "g.year", "g.target_units", "e.name", "e.department").
		From(goalsTable + " g").
		Join("employees e ON e.id = g.employee_id").
		Where(squirrel.Eq{"g.month": month, "g.year": year}).
		OrderBy("e.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		var goal domain.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.EmployeeID,
			&goal.Month,
			&goal.Year,
			&goal.TargetUnits,
			&goal.EmployeeName,
			&goal.Department,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountGoals() (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM goals").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
