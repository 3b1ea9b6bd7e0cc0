package selling

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/sales-tracker-api/pkg/utils"
)

const (
	publicIDLength     = 10
	publicIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// SellingService registra e consulta vendas. Registros são append-only:
// correções entram como novos registros, nunca como updates.
type SellingService interface {
	RecordSale(actor *domain.Claims, req *domain.RecordSaleRequest) (*domain.SaleEntry, error)
	ListSales(actor *domain.Claims, filter *domain.SaleFilter) ([]*domain.SaleEntry, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	employeeRepo repository.EmployeeRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	employeeRepo repository.EmployeeRepository,
) SellingService {
	return &Service{
		saleRepo:     saleRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *Service) RecordSale(actor *domain.Claims, req *domain.RecordSaleRequest) (*domain.SaleEntry, error) {
	if req.EmployeeID == 0 || req.Date == "" {
		return nil, NewSellingError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Empregado e data são obrigatórios")
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, NewSellingError(ErrMissingRequiredData, errorcodes.ErrInvalidFormat, "Data inválida: "+req.Date)
	}

	if req.Counts.HasNegative() {
		return nil, NewSellingError(ErrNegativeCount, errorcodes.ErrInvalidFormat, "Contagens negativas não são permitidas")
	}

	if req.Counts.Total() == 0 {
		return nil, NewSellingError(ErrEmptyEntry, errorcodes.ErrEmptyEntry, "Informe ao menos uma unidade vendida")
	}

	// Vendedores só registram vendas do empregado vinculado à própria conta.
	if actor.UserRoleID == domain.RoleVendor {
		if actor.UserEmployeeID == nil || *actor.UserEmployeeID != req.EmployeeID {
			return nil, NewSellingError(ErrNotOwnEmployee, errorcodes.ErrInsufficientPrivilege, "Registro permitido apenas para o próprio empregado")
		}
	}

	employee, err := s.employeeRepo.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao validar empregado do registro de venda")
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao validar empregado")
	}

	if employee == nil || !employee.Active {
		return nil, NewSellingError(ErrEmployeeNotFound, errorcodes.ErrInvalidRequest, "Empregado não encontrado ou inativo")
	}

	entry := &domain.SaleEntry{
		PublicID:   generatePublicID(),
		EmployeeID: req.EmployeeID,
		Date:       *date,
		Counts:     req.Counts,
		Comments:   req.Comments,
	}

	entry, err = s.saleRepo.InsertSale(entry)
	if err != nil {
		logrus.WithError(err).Error("Erro ao inserir registro de venda")
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao inserir registro de venda")
	}

	entry.EmployeeName = employee.Name
	entry.Department = employee.Department

	logrus.WithFields(logrus.Fields{
		"sale_id":     entry.ID,
		"employee_id": entry.EmployeeID,
		"date":        req.Date,
		"total":       entry.Counts.Total(),
	}).Info("Venda registrada")

	return entry, nil
}

// ListSales devolve registros em ordem cronológica. Para vendedores o
// filtro é forçado para o empregado vinculado à conta.
func (s *Service) ListSales(actor *domain.Claims, filter *domain.SaleFilter) ([]*domain.SaleEntry, error) {
	if filter == nil {
		filter = &domain.SaleFilter{}
	}

	if actor.UserRoleID == domain.RoleVendor {
		if actor.UserEmployeeID == nil {
			return []*domain.SaleEntry{}, nil
		}
		filter.EmployeeID = actor.UserEmployeeID
	}

	entries, err := s.saleRepo.ListSales(*filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas")
		return nil, NewSellingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao listar vendas")
	}

	return entries, nil
}

func generatePublicID() string {
	id, _ := gonanoid.Generate(publicIDCharacters, publicIDLength)
	return id
}
