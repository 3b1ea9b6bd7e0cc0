package reporting

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
)

// ReportingService agrega as vendas registradas e acompanha metas
// mensais. Todas as agregações aceitam o mesmo filtro das listagens.
type ReportingService interface {
	SumByCategory(filter domain.SaleFilter) (*domain.CategoryTotals, error)
	TotalsByEmployee(filter domain.SaleFilter) ([]*domain.EmployeeTotal, error)
	TotalsByDepartment(filter domain.SaleFilter) ([]*domain.DepartmentTotal, error)
	DailySeries(filter domain.SaleFilter) ([]*domain.DailyTotal, error)

	SetGoal(goal *domain.Goal) error
	ListGoals(month, year int) ([]*domain.Goal, error)
	GoalProgress(employeeID, month, year int) (*domain.GoalProgress, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	goalRepo     repository.GoalRepository
	employeeRepo repository.EmployeeRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	goalRepo repository.GoalRepository,
	employeeRepo repository.EmployeeRepository,
) ReportingService {
	return &Service{
		saleRepo:     saleRepo,
		goalRepo:     goalRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *Service) SumByCategory(filter domain.SaleFilter) (*domain.CategoryTotals, error) {
	totals, err := s.saleRepo.SumByCategory(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar vendas por categoria")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao somar vendas por categoria")
	}
	return totals, nil
}

// TotalsByEmployee devolve o ranking de empregados. Empates de total
// são resolvidos por nome em ordem alfabética.
func (s *Service) TotalsByEmployee(filter domain.SaleFilter) ([]*domain.EmployeeTotal, error) {
	totals, err := s.saleRepo.TotalsByEmployee(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao totalizar vendas por empregado")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao totalizar vendas por empregado")
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].EmployeeName < totals[j].EmployeeName
	})

	for i, total := range totals {
		total.Position = i + 1
	}

	return totals, nil
}

func (s *Service) TotalsByDepartment(filter domain.SaleFilter) ([]*domain.DepartmentTotal, error) {
	totals, err := s.saleRepo.TotalsByDepartment(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao totalizar vendas por departamento")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao totalizar vendas por departamento")
	}
	return totals, nil
}

func (s *Service) DailySeries(filter domain.SaleFilter) ([]*domain.DailyTotal, error) {
	series, err := s.saleRepo.DailyTotals(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar série diária de vendas")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao montar série diária")
	}
	return series, nil
}

func (s *Service) SetGoal(goal *domain.Goal) error {
	if goal.EmployeeID == 0 {
		return NewReportingError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Empregado é obrigatório")
	}

	if goal.Month < 1 || goal.Month > 12 || goal.Year < 2000 {
		return NewReportingError(ErrInvalidPeriod, errorcodes.ErrInvalidFormat, "Mês ou ano fora da faixa aceita")
	}

	if goal.TargetUnits < 0 {
		return NewReportingError(ErrInvalidTarget, errorcodes.ErrInvalidFormat, "Meta de unidades não pode ser negativa")
	}

	employee, err := s.employeeRepo.GetEmployeeByID(goal.EmployeeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao validar empregado da meta")
		return NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao validar empregado")
	}

	if employee == nil {
		return NewReportingError(ErrEmployeeNotFound, errorcodes.ErrInvalidRequest, "Empregado não encontrado")
	}

	if err := s.goalRepo.UpsertGoal(goal); err != nil {
		logrus.WithError(err).Error("Erro ao gravar meta")
		return NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao gravar meta")
	}

	return nil
}

func (s *Service) ListGoals(month, year int) ([]*domain.Goal, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, NewReportingError(ErrInvalidPeriod, errorcodes.ErrInvalidFormat, "Mês ou ano fora da faixa aceita")
	}

	goals, err := s.goalRepo.ListGoals(month, year)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar metas")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao listar metas")
	}

	return goals, nil
}

// GoalProgress compara o realizado do mês com a meta. Sem meta gravada
// (ou meta zero) o percentual é zero; metas superadas passam de 100.
func (s *Service) GoalProgress(employeeID, month, year int) (*domain.GoalProgress, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, NewReportingError(ErrInvalidPeriod, errorcodes.ErrInvalidFormat, "Mês ou ano fora da faixa aceita")
	}

	employee, err := s.employeeRepo.GetEmployeeByID(employeeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empregado do progresso de meta")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar empregado")
	}

	if employee == nil {
		return nil, NewReportingError(ErrEmployeeNotFound, errorcodes.ErrInvalidRequest, "Empregado não encontrado")
	}

	achieved, err := s.saleRepo.AchievedUnits(employeeID, month, year)
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar unidades realizadas")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao somar unidades realizadas")
	}

	progress := &domain.GoalProgress{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Achieved:   achieved,
	}

	goal, err := s.goalRepo.GetGoal(employeeID, month, year)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar meta")
		return nil, NewReportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar meta")
	}

	if goal != nil {
		progress.Target = goal.TargetUnits
	}

	if progress.Target > 0 {
		progress.Percent = float64(progress.Achieved) / float64(progress.Target) * 100
	}

	return progress, nil
}
