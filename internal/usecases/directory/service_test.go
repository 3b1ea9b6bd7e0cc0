package directory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/config"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SeedAdminUsername: "admin",
		},
	}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockEmployeeRepository, *mocks.MockUserRepository) {
	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		employeeRepo: mockEmployeeRepo,
		userRepo:     mockUserRepo,
		cfg:          testConfig(),
	}
	return service, mockEmployeeRepo, mockUserRepo
}

func TestCreateEmployee(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.CreateEmployeeRequest
		setup    func(mockEmployeeRepo *mocks.MockEmployeeRepository)
		wantErr  error
		validate func(t *testing.T, employee *domain.Employee)
	}{
		{
			name: "criação com sucesso",
			req:  &domain.CreateEmployeeRequest{Name: "Ana Souza", Department: domain.DepartmentStore},
			setup: func(mockEmployeeRepo *mocks.MockEmployeeRepository) {
				mockEmployeeRepo.EXPECT().
					CreateEmployee(gomock.Any()).
					DoAndReturn(func(employee *domain.Employee) (*domain.Employee, error) {
						employee.ID = 1
						return employee, nil
					})
			},
			validate: func(t *testing.T, employee *domain.Employee) {
				assert.Equal(t, "Ana Souza", employee.Name)
				assert.NotEmpty(t, employee.PublicID)
			},
		},
		{
			name:    "nome vazio",
			req:     &domain.CreateEmployeeRequest{Name: "   ", Department: domain.DepartmentStore},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "departamento desconhecido",
			req:     &domain.CreateEmployeeRequest{Name: "Ana", Department: domain.Department("perfumaria")},
			wantErr: ErrInvalidDepartment,
		},
		{
			name: "nome duplicado",
			req:  &domain.CreateEmployeeRequest{Name: "Ana Souza", Department: domain.DepartmentStore},
			setup: func(mockEmployeeRepo *mocks.MockEmployeeRepository) {
				mockEmployeeRepo.EXPECT().
					CreateEmployee(gomock.Any()).
					Return(nil, repository.ErrDuplicate)
			},
			wantErr: ErrNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockEmployeeRepo, _ := newTestService(ctrl)
			if tt.setup != nil {
				tt.setup(mockEmployeeRepo)
			}

			employee, err := service.CreateEmployee(tt.req)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			tt.validate(t, employee)
		})
	}
}

// Desativar empregado já inativo não é erro e não grava nada.
func TestDeactivateEmployee_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockEmployeeRepo, _ := newTestService(ctrl)

	mockEmployeeRepo.EXPECT().
		GetEmployeeByID(3).
		Return(&domain.Employee{ID: 3, Name: "Ana", Active: false}, nil)

	err := service.DeactivateEmployee(3)
	assert.NoError(t, err)
}

func TestDeactivateEmployee_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockEmployeeRepo, _ := newTestService(ctrl)

	mockEmployeeRepo.EXPECT().GetEmployeeByID(99).Return(nil, nil)

	err := service.DeactivateEmployee(99)
	assert.True(t, errors.Is(err, ErrEmployeeNotFound))
}

func TestDeactivateEmployee_Ativo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockEmployeeRepo, _ := newTestService(ctrl)

	mockEmployeeRepo.EXPECT().
		GetEmployeeByID(3).
		Return(&domain.Employee{ID: 3, Name: "Ana", Active: true}, nil)
	mockEmployeeRepo.EXPECT().SetEmployeeActive(3, false).Return(nil)

	err := service.DeactivateEmployee(3)
	assert.NoError(t, err)
}

func TestCreateUserAccount_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockEmployeeRepo, mockUserRepo := newTestService(ctrl)

	employeeID := 3
	mockEmployeeRepo.EXPECT().
		GetEmployeeByID(3).
		Return(&domain.Employee{ID: 3, Name: "Ana", Active: true}, nil)

	mockUserRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca é armazenada em claro
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
			assert.Equal(t, "ana", user.Username)
			assert.True(t, user.Active)
			user.ID = 10
			return user, nil
		})

	user, err := service.CreateUserAccount(&domain.CreateUserRequest{
		Username:   "Ana",
		Password:   "senha123",
		RoleID:     domain.RoleVendor,
		EmployeeID: &employeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestCreateUserAccount_PapelInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	_, err := service.CreateUserAccount(&domain.CreateUserRequest{
		Username: "ana",
		Password: "senha123",
		RoleID:   9,
	})
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestCreateUserAccount_UsernameDuplicado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockUserRepo := newTestService(ctrl)

	mockUserRepo.EXPECT().CreateUser(gomock.Any()).Return(nil, repository.ErrDuplicate)

	_, err := service.CreateUserAccount(&domain.CreateUserRequest{
		Username: "ana",
		Password: "senha123",
		RoleID:   domain.RoleVendor,
	})
	assert.True(t, errors.Is(err, ErrUsernameExists))
}

// A conta administradora semeada nunca pode ser removida pela API.
func TestDeleteUserAccount_AdminSemeadoProtegido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	err := service.DeleteUserAccount("admin")
	assert.True(t, errors.Is(err, ErrSeedAdminProtected))

	err = service.DeleteUserAccount("ADMIN")
	assert.True(t, errors.Is(err, ErrSeedAdminProtected))
}

func TestDeleteUserAccount_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockUserRepo := newTestService(ctrl)

	mockUserRepo.EXPECT().
		GetUserByUsername("ana").
		Return(&domain.User{ID: 10, Username: "ana"}, nil)
	mockUserRepo.EXPECT().DeleteUser("ana").Return(nil)

	err := service.DeleteUserAccount("ana")
	assert.NoError(t, err)
}
