package selling

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func vendorClaims(employeeID int) *domain.Claims {
	return &domain.Claims{
		UserID:         1,
		UserName:       "maria",
		UserRoleID:     domain.RoleVendor,
		UserEmployeeID: &employeeID,
	}
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 2, UserName: "admin", UserRoleID: domain.RoleAdmin}
}

func TestRecordSale(t *testing.T) {
	tests := []struct {
		name    string
		actor   *domain.Claims
		req     *domain.RecordSaleRequest
		setup   func(mockSaleRepo *mocks.MockSaleRepository, mockEmployeeRepo *mocks.MockEmployeeRepository)
		wantErr error
	}{
		{
			name:  "registro com sucesso",
			actor: adminClaims(),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "2024-03-15",
				Counts:     domain.CategoryCounts{SelfLiquidating: 2, HouseBrand: 1},
			},
			setup: func(mockSaleRepo *mocks.MockSaleRepository, mockEmployeeRepo *mocks.MockEmployeeRepository) {
				mockEmployeeRepo.EXPECT().
					GetEmployeeByID(3).
					Return(&domain.Employee{ID: 3, Name: "Ana", Department: domain.DepartmentStore, Active: true}, nil)
				mockSaleRepo.EXPECT().
					InsertSale(gomock.Any()).
					DoAndReturn(func(entry *domain.SaleEntry) (*domain.SaleEntry, error) {
						assert.NotEmpty(t, entry.PublicID)
						assert.Equal(t, 3, entry.EmployeeID)
						assert.Equal(t, 3, entry.Counts.Total())
						entry.ID = 11
						return entry, nil
					})
			},
		},
		{
			name:  "todas as categorias zeradas",
			actor: adminClaims(),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "2024-03-15",
			},
			wantErr: ErrEmptyEntry,
		},
		{
			name:  "contagem negativa",
			actor: adminClaims(),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "2024-03-15",
				Counts:     domain.CategoryCounts{SelfLiquidating: -1, WeeklyOffer: 5},
			},
			wantErr: ErrNegativeCount,
		},
		{
			name:  "data inválida",
			actor: adminClaims(),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "15/03/2024",
				Counts:     domain.CategoryCounts{SelfLiquidating: 1},
			},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:  "vendedor registrando para outro empregado",
			actor: vendorClaims(4),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "2024-03-15",
				Counts:     domain.CategoryCounts{SelfLiquidating: 1},
			},
			wantErr: ErrNotOwnEmployee,
		},
		{
			name:  "empregado inativo",
			actor: adminClaims(),
			req: &domain.RecordSaleRequest{
				EmployeeID: 3,
				Date:       "2024-03-15",
				Counts:     domain.CategoryCounts{Additional: 2},
			},
			setup: func(mockSaleRepo *mocks.MockSaleRepository, mockEmployeeRepo *mocks.MockEmployeeRepository) {
				mockEmployeeRepo.EXPECT().
					GetEmployeeByID(3).
					Return(&domain.Employee{ID: 3, Name: "Ana", Active: false}, nil)
			},
			wantErr: ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
			mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)
			if tt.setup != nil {
				tt.setup(mockSaleRepo, mockEmployeeRepo)
			}

			service := &Service{saleRepo: mockSaleRepo, employeeRepo: mockEmployeeRepo}

			entry, err := service.RecordSale(tt.actor, tt.req)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 11, entry.ID)
			assert.Equal(t, "Ana", entry.EmployeeName)
			assert.Equal(t, domain.DepartmentStore, entry.Department)
		})
	}
}

// Vendedor registrando a própria venda: permitido.
func TestRecordSale_VendedorProprioEmpregado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	mockEmployeeRepo.EXPECT().
		GetEmployeeByID(4).
		Return(&domain.Employee{ID: 4, Name: "Maria", Department: domain.DepartmentDrugstore, Active: true}, nil)
	mockSaleRepo.EXPECT().
		InsertSale(gomock.Any()).
		DoAndReturn(func(entry *domain.SaleEntry) (*domain.SaleEntry, error) {
			entry.ID = 12
			return entry, nil
		})

	service := &Service{saleRepo: mockSaleRepo, employeeRepo: mockEmployeeRepo}

	entry, err := service.RecordSale(vendorClaims(4), &domain.RecordSaleRequest{
		EmployeeID: 4,
		Date:       "2024-03-16",
		Counts:     domain.CategoryCounts{WeeklyOffer: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), entry.Date)
}

// Listagens de vendedor são sempre restritas ao próprio empregado,
// mesmo que o filtro peça outro.
func TestListSales_VendedorForcaFiltro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)

	mockSaleRepo.EXPECT().
		ListSales(gomock.Any()).
		DoAndReturn(func(filter domain.SaleFilter) ([]*domain.SaleEntry, error) {
			require.NotNil(t, filter.EmployeeID)
			assert.Equal(t, 4, *filter.EmployeeID)
			return []*domain.SaleEntry{}, nil
		})

	service := &Service{saleRepo: mockSaleRepo, employeeRepo: mockEmployeeRepo}

	otherEmployee := 9
	_, err := service.ListSales(vendorClaims(4), &domain.SaleFilter{EmployeeID: &otherEmployee})
	assert.NoError(t, err)
}

func TestListSales_VendedorSemVinculo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		saleRepo:     mocks.NewMockSaleRepository(ctrl),
		employeeRepo: mocks.NewMockEmployeeRepository(ctrl),
	}

	claims := &domain.Claims{UserID: 1, UserRoleID: domain.RoleVendor}
	entries, err := service.ListSales(claims, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
