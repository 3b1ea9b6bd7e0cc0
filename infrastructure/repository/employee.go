package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const employeesTable = "employees"

type EmployeeRepository interface {
	CreateEmployee(employee *domain.Employee) (*domain.Employee, error)
	GetEmployeeByID(id int) (*domain.Employee, error)
	ListEmployees(onlyActive bool) ([]*domain.Employee, error)
	SetEmployeeActive(id int, active bool) error
	CountEmployees() (int, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) CreateEmployee(employee *domain.Employee) (*domain.Employee, error) {
	queryBuilder := squirrel.
		Insert(employeesTable).
		Columns("public_id", "name", "email", "department", "active").
		Values(employee.PublicID, employee.Name, employee.Email, employee.Department, true).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(insertSQL, insertArgs...).Scan(
		&employee.ID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	employee.Active = true
	return employee, nil
}

func (r *employeeRepository) GetEmployeeByID(id int) (*domain.Employee, error) {
	query, args, err := squirrel.
		Select("id", "public_id", "name", "email", "department", "active", "created_at", "updated_at").
		From(employeesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var employee domain.Employee
	err = r.conn.QueryRow(query, args...).Scan(
		&employee.ID,
		&employee.PublicID,
		&employee.Name,
		&employee.Email,
		&employee.Department,
		&employee.Active,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &employee, nil
}

func (r *employeeRepository) ListEmployees(onlyActive bool) ([]*domain.Employee, error) {
	queryBuilder := squirrel.
		Select("id", "public_id", "name", "email", "department", "active", "created_at", "updated_at").
		From(employeesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.PublicID,
			&employee.Name,
			&employee.Email,
			&employee.Department,
			&employee.Active,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// SetEmployeeActive alterna o soft delete. Repetir a operação com o mesmo
// valor não é erro.
func (r *employeeRepository) SetEmployeeActive(id int, active bool) error {
	query, args, err := squirrel.
		Update(employeesTable).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *employeeRepository) CountEmployees() (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
