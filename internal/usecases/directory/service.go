package directory

import (
	"errors"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	publicIDLength     = 6
	publicIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// DirectoryService administra os cadastros de empregados e contas de
// usuário. Remoções de empregado são sempre soft delete para preservar
// o histórico de vendas.
type DirectoryService interface {
	CreateEmployee(req *domain.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployee(id int) (*domain.Employee, error)
	ListEmployees(onlyActive bool) ([]*domain.Employee, error)
	DeactivateEmployee(id int) error

	CreateUserAccount(req *domain.CreateUserRequest) (*domain.User, error)
	ListUserAccounts() ([]*domain.User, error)
	SetAccountActive(username string, active bool) error
	DeleteUserAccount(username string) error
}

type Service struct {
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
	cfg          *config.Config
}

func NewService(
	employeeRepo repository.EmployeeRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) DirectoryService {
	return &Service{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

func (s *Service) CreateEmployee(req *domain.CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewDirectoryError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Nome é obrigatório")
	}

	if !req.Department.Valid() {
		return nil, NewDirectoryError(ErrInvalidDepartment, errorcodes.ErrInvalidFormat, "Departamento desconhecido: "+string(req.Department))
	}

	employee := &domain.Employee{
		PublicID:   generatePublicID(),
		Name:       name,
		Email:      req.Email,
		Department: req.Department,
	}

	employee, err := s.employeeRepo.CreateEmployee(employee)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewDirectoryError(ErrNameExists, errorcodes.ErrConflict, "Nome já cadastrado: "+name)
		}
		logrus.WithError(err).Error("Erro ao criar empregado")
		return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao criar empregado")
	}

	return employee, nil
}

func (s *Service) GetEmployee(id int) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empregado")
		return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar empregado")
	}
	return employee, nil
}

func (s *Service) ListEmployees(onlyActive bool) ([]*domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empregados")
		return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao listar empregados")
	}
	return employees, nil
}

// DeactivateEmployee é idempotente: desativar um empregado já inativo
// não é erro e não altera nada.
func (s *Service) DeactivateEmployee(id int) error {
	employee, err := s.employeeRepo.GetEmployeeByID(id)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empregado para desativação")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar empregado")
	}

	if employee == nil {
		return NewDirectoryError(ErrEmployeeNotFound, errorcodes.ErrInvalidRequest, "Empregado não encontrado")
	}

	if !employee.Active {
		return nil
	}

	if err := s.employeeRepo.SetEmployeeActive(id, false); err != nil {
		logrus.WithError(err).Error("Erro ao desativar empregado")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao desativar empregado")
	}

	return nil
}

func (s *Service) CreateUserAccount(req *domain.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" {
		return nil, NewDirectoryError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Username e senha são obrigatórios")
	}

	if req.RoleID < domain.RoleAdmin || req.RoleID > domain.RoleVendor {
		return nil, NewDirectoryError(ErrInvalidRole, errorcodes.ErrInvalidFormat, "Papel desconhecido")
	}

	if req.EmployeeID != nil {
		employee, err := s.employeeRepo.GetEmployeeByID(*req.EmployeeID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao validar vínculo de empregado")
			return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao validar empregado")
		}
		if employee == nil {
			return nil, NewDirectoryError(ErrEmployeeNotFound, errorcodes.ErrInvalidRequest, "Empregado não encontrado para vínculo")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		EmployeeID:   req.EmployeeID,
		Active:       true,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// O índice parcial de employee_id e a unicidade de username
			// disparam o mesmo código; a mensagem distingue os casos.
			if req.EmployeeID != nil {
				return nil, NewDirectoryError(ErrEmployeeHasAccount, errorcodes.ErrConflict, "Username já cadastrado ou empregado já possui conta ativa")
			}
			return nil, NewDirectoryError(ErrUsernameExists, errorcodes.ErrConflict, "Username já cadastrado: "+username)
		}
		logrus.WithError(err).Error("Erro ao criar conta de usuário")
		return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao criar conta de usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUserAccounts() ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar usuários")
		return nil, NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao listar usuários")
	}
	return users, nil
}

func (s *Service) SetAccountActive(username string, active bool) error {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuário")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar usuário")
	}

	if user == nil {
		return NewDirectoryError(ErrUserNotFound, errorcodes.ErrInvalidRequest, "Usuário não encontrado")
	}

	if err := s.userRepo.SetUserActive(username, active); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return NewDirectoryError(ErrEmployeeHasAccount, errorcodes.ErrConflict, "Empregado vinculado já possui outra conta ativa")
		}
		logrus.WithError(err).Error("Erro ao alterar estado da conta")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao alterar estado da conta")
	}

	return nil
}

// DeleteUserAccount remove a conta, exceto a administradora semeada,
// que é recusada com erro próprio, nunca ignorada em silêncio.
func (s *Service) DeleteUserAccount(username string) error {
	if strings.EqualFold(username, s.cfg.Auth.SeedAdminUsername) {
		return NewDirectoryError(ErrSeedAdminProtected, errorcodes.ErrSeedAdminProtected, "Conta administradora semeada é protegida")
	}

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuário para remoção")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao buscar usuário")
	}

	if user == nil {
		return NewDirectoryError(ErrUserNotFound, errorcodes.ErrInvalidRequest, "Usuário não encontrado")
	}

	if err := s.userRepo.DeleteUser(username); err != nil {
		logrus.WithError(err).Error("Erro ao remover conta de usuário")
		return NewDirectoryError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao remover conta de usuário")
	}

	return nil
}

func generatePublicID() string {
	id, _ := gonanoid.Generate(publicIDCharacters, publicIDLength)
	return id
}
