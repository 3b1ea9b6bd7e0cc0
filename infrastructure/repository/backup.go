package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

// BackupRepository faz o dump lógico e a restauração integral das
// quatro tabelas do sistema.
type BackupRepository interface {
	DumpAll() (*domain.BackupPayload, error)
	RestoreAll(ctx context.Context, payload *domain.BackupPayload) error
}

type backupRepository struct {
	conn *postgres.Connection
}

func NewBackupRepository(conn *postgres.Connection) BackupRepository {
	return &backupRepository{
		conn: conn,
	}
}

func (r *backupRepository) DumpAll() (*domain.BackupPayload, error) {
	payload := &domain.BackupPayload{
		Version:   domain.BackupPayloadVersion,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.dumpEmployees(payload); err != nil {
		return nil, fmt.Errorf("erro ao exportar empregados: %w", err)
	}
	if err := r.dumpUsers(payload); err != nil {
		return nil, fmt.Errorf("erro ao exportar usuários: %w", err)
	}
	if err := r.dumpSales(payload); err != nil {
		return nil, fmt.Errorf("erro ao exportar vendas: %w", err)
	}
	if err := r.dumpGoals(payload); err != nil {
		return nil, fmt.Errorf("erro ao exportar metas: %w", err)
	}

	return payload, nil
}

func (r *backupRepository) dumpEmployees(payload *domain.BackupPayload) error {
	rows, err := r.conn.Query(`
		SELECT id, public_id, name, email, department, active, created_at, updated_at
		FROM employees ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	payload.Employees = make([]domain.BackupEmployee, 0)
	for rows.Next() {
		var row domain.BackupEmployee
		if err := rows.Scan(
			&row.ID, &row.PublicID, &row.Name, &row.Email,
			&row.Department, &row.Active, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return err
		}
		payload.Employees = append(payload.Employees, row)
	}

	return rows.Err()
}

func (r *backupRepository) dumpUsers(payload *domain.BackupPayload) error {
	rows, err := r.conn.Query(`
		SELECT id, username, password_hash, legacy_sha256, role_id, employee_id, active, created_at, last_login
		FROM users ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	payload.Users = make([]domain.BackupUser, 0)
	for rows.Next() {
		var row domain.BackupUser
		if err := rows.Scan(
			&row.ID, &row.Username, &row.PasswordHash, &row.LegacySHA256,
			&row.RoleID, &row.EmployeeID, &row.Active, &row.CreatedAt, &row.LastLogin,
		); err != nil {
			return err
		}
		payload.Users = append(payload.Users, row)
	}

	return rows.Err()
}

func (r *backupRepository) dumpSales(payload *domain.BackupPayload) error {
	rows, err := r.conn.Query(`
		SELECT id, public_id, employee_id, sale_date, self_liquidating, weekly_offer,
		       house_brand, additional, comments, created_at
		FROM sales_entries ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	payload.Sales = make([]domain.BackupSale, 0)
	for rows.Next() {
		var row domain.BackupSale
		if err := rows.Scan(
			&row.ID, &row.PublicID, &row.EmployeeID, &row.Date,
			&row.SelfLiquidating, &row.WeeklyOffer, &row.HouseBrand, &row.Additional,
			&row.Comments, &row.CreatedAt,
		); err != nil {
			return err
		}
		payload.Sales = append(payload.Sales, row)
	}

	return rows.Err()
}

func (r *backupRepository) dumpGoals(payload *domain.BackupPayload) error {
	rows, err := r.conn.Query(`
		SELECT id, employee_id, month, year, target_units
		FROM goals ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	payload.Goals = make([]domain.BackupGoal, 0)
	for rows.Next() {
		var row domain.BackupGoal
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.Month, &row.Year, &row.TargetUnits); err != nil {
			return err
		}
		payload.Goals = append(payload.Goals, row)
	}

	return rows.Err()
}

// RestoreAll substitui o conteúdo inteiro das quatro tabelas pelo
// payload, em uma única transação. Estado atual é descartado.
func (r *backupRepository) RestoreAll(ctx context.Context, payload *domain.BackupPayload) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`TRUNCATE sales_entries, goals, users, employees RESTART IDENTITY CASCADE`); err != nil {
			return fmt.Errorf("erro ao limpar tabelas: %w", err)
		}

		for _, row := range payload.Employees {
			query, args, err := squirrel.
				Insert(employeesTable).
				Columns("id", "public_id", "name", "email", "department", "active", "created_at", "updated_at").
				Values(row.ID, row.PublicID, row.Name, row.Email, row.Department, row.Active, row.CreatedAt, row.UpdatedAt).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao restaurar empregado %d: %w", row.ID, err)
			}
		}

		for _, row := range payload.Users {
			query, args, err := squirrel.
				Insert(usersTable).
				Columns("id", "username", "password_hash", "legacy_sha256", "role_id", "employee_id", "active", "created_at", "last_login").
				Values(row.ID, row.Username, row.PasswordHash, row.LegacySHA256, row.RoleID, row.EmployeeID, row.Active, row.CreatedAt, row.LastLogin).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao restaurar usuário %d: %w", row.ID, err)
			}
		}

		for _, row := range payload.Sales {
			query, args, err := squirrel.
				Insert(salesTable).
				Columns("id", "public_id", "employee_id", "sale_date", "self_liquidating", "weekly_offer", "house_brand", "additional", "comments", "created_at").
				Values(row.ID, row.PublicID, row.EmployeeID, row.Date, row.SelfLiquidating, row.WeeklyOffer, row.HouseBrand, row.Additional, row.Comments, row.CreatedAt).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao restaurar venda %d: %w", row.ID, err)
			}
		}

		for _, row := range payload.Goals {
			query, args, err := squirrel.
				Insert(goalsTable).
				Columns("id", "employee_id", "month", "year", "target_units").
				Values(row.ID, row.EmployeeID, row.Month, row.Year, row.TargetUnits).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao restaurar meta %d: %w", row.ID, err)
			}
		}

		// Sequências avançam além dos IDs restaurados.
		for _, table := range []string{"employees", "users", "sales_entries", "goals"} {
			reseed := fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)`,
				table, table,
			)
			if _, err := tx.Exec(reseed); err != nil {
				return fmt.Errorf("erro ao reposicionar sequência de %s: %w", table, err)
			}
		}

		return nil
	})
}
