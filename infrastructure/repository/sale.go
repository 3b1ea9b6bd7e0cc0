package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
)

const (
	salesTable       = "sales_entries"
	salesJoinedTable = "sales_entries s JOIN employees e ON e.id = s.employee_id"
)

type SaleRepository interface {
	InsertSale(sale *domain.SaleEntry) (*domain.SaleEntry, error)
	ListSales(filter domain.SaleFilter) ([]*domain.SaleEntry, error)
	SumByCategory(filter domain.SaleFilter) (*domain.CategoryTotals, error)
	TotalsByEmployee(filter domain.SaleFilter) ([]*domain.EmployeeTotal, error)
	TotalsByDepartment(filter domain.SaleFilter) ([]*domain.DepartmentTotal, error)
	DailyTotals(filter domain.SaleFilter) ([]*domain.DailyTotal, error)
	AchievedUnits(employeeID, month, year int) (int, error)
	CountSales() (int, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// applyFilter adiciona as cláusulas do filtro. Datas ausentes significam
// "desde sempre"; registros de empregados desativados continuam visíveis.
func applyFilter(builder squirrel.SelectBuilder, filter domain.SaleFilter) squirrel.SelectBuilder {
	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"s.employee_id": *filter.EmployeeID})
	}

	if filter.Department != nil {
		builder = builder.Where(squirrel.Eq{"e.department": *filter.Department})
	}

	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"s.sale_date": filter.From.Format(time.DateOnly)})
	}

	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"s.sale_date": filter.To.Format(time.DateOnly)})
	}

	return builder
}

func (r *saleRepository) InsertSale(sale *domain.SaleEntry) (*domain.SaleEntry, error) {
	queryBuilder := squirrel.
		Insert(salesTable).
		Columns("public_id", "employee_id", "sale_date", "self_liquidating", "weekly_offer", "house_brand", "additional", "comments").
		Values(
			sale.PublicID,
			sale.EmployeeID,
			sale.Date.Format(time.DateOnly),
			sale.Counts.SelfLiquidating,
			sale.Counts.WeeklyOffer,
			sale.Counts.HouseBrand,
			sale.Counts.Additional,
			sale.Comments,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	insertSQL, insertArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(insertSQL, insertArgs...).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func (r *saleRepository) ListSales(filter domain.SaleFilter) ([]*domain.SaleEntry, error) {
	queryBuilder := squirrel.
		Select(
			"s.id", "s.public_id", "s.employee_id", "e.name", "e.department",
			"s.sale_date", "s.self_liquidating", "s.weekly_offer", "s.house_brand",
			"s.additional", "s.comments", "s.created_at",
		).
		From(salesJoinedTable).
		OrderBy("s.sale_date DESC", "s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyFilter(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*domain.SaleEntry, 0)
	for rows.Next() {
		var sale domain.SaleEntry
		if err := rows.Scan(
			&sale.ID,
			&sale.PublicID,
			&sale.EmployeeID,
			&sale.EmployeeName,
			&sale.Department,
			&sale.Date,
			&sale.Counts.SelfLiquidating,
			&sale.Counts.WeeklyOffer,
			&sale.Counts.HouseBrand,
			&sale.Counts.Additional,
			&sale.Comments,
			&sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *saleRepository) SumByCategory(filter domain.SaleFilter) (*domain.CategoryTotals, error) {
	queryBuilder := squirrel.
		Select(
			"COALESCE(SUM(s.self_liquidating), 0)",
			"COALESCE(SUM(s.weekly_offer), 0)",
			"COALESCE(SUM(s.house_brand), 0)",
			"COALESCE(SUM(s.additional), 0)",
		).
		From(salesJoinedTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyFilter(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.CategoryTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.SelfLiquidating,
		&totals.WeeklyOffer,
		&totals.HouseBrand,
		&totals.Additional,
	)
	if err != nil {
		return nil, err
	}

	totals.Total = totals.SelfLiquidating + totals.WeeklyOffer + totals.HouseBrand + totals.Additional
	return totals, nil
}

func (r *saleRepository) TotalsByEmployee(filter domain.SaleFilter) ([]*domain.EmployeeTotal, error) {
	queryBuilder := squirrel.
		Select(
			"s.employee_id",
			"e.name",
			"e.department",
			"COUNT(s.id)",
			"COALESCE(SUM(s.self_liquidating + s.weekly_offer + s.house_brand + s.additional), 0) AS total",
		).
		From(salesJoinedTable).
		GroupBy("s.employee_id", "e.name", "e.department").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyFilter(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]*domain.EmployeeTotal, 0)
	for rows.Next() {
		var total domain.EmployeeTotal
		if err := rows.Scan(
			&total.EmployeeID,
			&total.EmployeeName,
			&total.Department,
			&total.Entries,
			&total.Total,
		); err != nil {
			return nil, err
		}
		totals = append(totals, &total)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *saleRepository) TotalsByDepartment(filter domain.SaleFilter) ([]*domain.DepartmentTotal, error) {
	queryBuilder := squirrel.
		Select(
			"e.department",
			"COALESCE(SUM(s.self_liquidating + s.weekly_offer + s.house_brand + s.additional), 0) AS total",
		).
		From(salesJoinedTable).
		GroupBy("e.department").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyFilter(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make([]*domain.DepartmentTotal, 0)
	for rows.Next() {
		var total domain.DepartmentTotal
		if err := rows.Scan(&total.Department, &total.Total); err != nil {
			return nil, err
		}
		totals = append(totals, &total)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

// DailyTotals retorna a série diária do período. Dias sem registros não
// são preenchidos com zero.
func (r *saleRepository) DailyTotals(filter domain.SaleFilter) ([]*domain.DailyTotal, error) {
	queryBuilder := squirrel.
		Select(
			"s.sale_date",
			"COALESCE(SUM(s.self_liquidating + s.weekly_offer + s.house_brand + s.additional), 0)",
		).
		From(salesJoinedTable).
		GroupBy("s.sale_date").
		OrderBy("s.sale_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyFilter(queryBuilder, filter)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := make([]*domain.DailyTotal, 0)
	for rows.Next() {
		var point domain.DailyTotal
		if err := rows.Scan(&point.Date, &point.Total); err != nil {
			return nil, err
		}
		series = append(series, &point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}

func (r *saleRepository) AchievedUnits(employeeID, month, year int) (int, error) {
	query := `
		SELECT COALESCE(SUM(self_liquidating + weekly_offer + house_brand + additional), 0)
		FROM sales_entries
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM sale_date) = $2
		  AND EXTRACT(YEAR FROM sale_date) = $3`

	var achieved int
	err := r.conn.QueryRow(query, employeeID, month, year).Scan(&achieved)
	if err != nil {
		return 0, err
	}

	return achieved, nil
}

func (r *saleRepository) CountSales() (int, error) {
	var count int
	err := r.conn.QueryRow("SELECT COUNT(*) FROM sales_entries").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
