package reporting

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

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockSaleRepository, *mocks.MockGoalRepository, *mocks.MockEmployeeRepository) {
	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockEmployeeRepo := mocks.NewMockEmployeeRepository(ctrl)
	service := &Service{
		saleRepo:     mockSaleRepo,
		goalRepo:     mockGoalRepo,
		employeeRepo: mockEmployeeRepo,
	}
	return service, mockSaleRepo, mockGoalRepo, mockEmployeeRepo
}

// Empates de total são resolvidos por nome em ordem alfabética, e as
// posições são numeradas a partir de 1.
func TestTotalsByEmployee_OrdenacaoEPosicoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSaleRepo, _, _ := newTestService(ctrl)

	mockSaleRepo.EXPECT().
		TotalsByEmployee(gomock.Any()).
		Return([]*domain.EmployeeTotal{
			{EmployeeID: 1, EmployeeName: "Carla", Total: 10},
			{EmployeeID: 2, EmployeeName: "Bruno", Total: 25},
			{EmployeeID: 3, EmployeeName: "Ana", Total: 10},
		}, nil)

	totals, err := service.TotalsByEmployee(domain.SaleFilter{})
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, "Bruno", totals[0].EmployeeName)
	assert.Equal(t, 1, totals[0].Position)

	// Ana e Carla empatam em 10; Ana vem primeiro
	assert.Equal(t, "Ana", totals[1].EmployeeName)
	assert.Equal(t, 2, totals[1].Position)
	assert.Equal(t, "Carla", totals[2].EmployeeName)
	assert.Equal(t, 3, totals[2].Position)
}

func TestSumByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSaleRepo, _, _ := newTestService(ctrl)

	mockSaleRepo.EXPECT().
		SumByCategory(gomock.Any()).
		Return(&domain.CategoryTotals{SelfLiquidating: 2, HouseBrand: 1, Total: 3}, nil)

	totals, err := service.SumByCategory(domain.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Total)
	assert.Equal(t, 2, totals.SelfLiquidating)
	assert.Equal(t, 0, totals.WeeklyOffer)
}

func TestDailySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSaleRepo, _, _ := newTestService(ctrl)

	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	mockSaleRepo.EXPECT().
		DailyTotals(gomock.Any()).
		Return([]*domain.DailyTotal{
			{Date: day1, Total: 5},
			{Date: day3, Total: 2},
		}, nil)

	series, err := service.DailySeries(domain.SaleFilter{})
	require.NoError(t, err)

	// Dias sem registro não aparecem na série
	require.Len(t, series, 2)
	assert.Equal(t, day1, series[0].Date)
	assert.Equal(t, day3, series[1].Date)
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name        string
		achieved    int
		goal        *domain.Goal
		wantPercent float64
		wantTarget  int
	}{
		{
			name:        "progresso parcial",
			achieved:    30,
			goal:        &domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: 120},
			wantPercent: 25,
			wantTarget:  120,
		},
		{
			name:        "meta superada passa de 100",
			achieved:    150,
			goal:        &domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: 120},
			wantPercent: 125,
			wantTarget:  120,
		},
		{
			name:        "sem meta gravada",
			achieved:    40,
			goal:        nil,
			wantPercent: 0,
			wantTarget:  0,
		},
		{
			name:        "meta zero",
			achieved:    40,
			goal:        &domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: 0},
			wantPercent: 0,
			wantTarget:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, mockSaleRepo, mockGoalRepo, mockEmployeeRepo := newTestService(ctrl)

			mockEmployeeRepo.EXPECT().
				GetEmployeeByID(3).
				Return(&domain.Employee{ID: 3, Name: "Ana", Active: true}, nil)
			mockSaleRepo.EXPECT().AchievedUnits(3, 3, 2024).Return(tt.achieved, nil)
			mockGoalRepo.EXPECT().GetGoal(3, 3, 2024).Return(tt.goal, nil)

			progress, err := service.GoalProgress(3, 3, 2024)
			require.NoError(t, err)

			assert.Equal(t, tt.achieved, progress.Achieved)
			assert.Equal(t, tt.wantTarget, progress.Target)
			assert.InDelta(t, tt.wantPercent, progress.Percent, 0.0001)
		})
	}
}

func TestGoalProgress_PeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestService(ctrl)

	_, err := service.GoalProgress(3, 13, 2024)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))

	_, err = service.GoalProgress(3, 0, 2024)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestSetGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockGoalRepo, mockEmployeeRepo := newTestService(ctrl)

	mockEmployeeRepo.EXPECT().
		GetEmployeeByID(3).
		Return(&domain.Employee{ID: 3, Name: "Ana", Active: true}, nil)
	mockGoalRepo.EXPECT().
		UpsertGoal(&domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: 120}).
		Return(nil)

	err := service.SetGoal(&domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: 120})
	assert.NoError(t, err)
}

func TestSetGoal_MetaNegativa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestService(ctrl)

	err := service.SetGoal(&domain.Goal{EmployeeID: 3, Month: 3, Year: 2024, TargetUnits: -5})
	assert.True(t, errors.Is(err, ErrInvalidTarget))
}

func TestSetGoal_EmpregadoInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, mockEmployeeRepo := newTestService(ctrl)

	mockEmployeeRepo.EXPECT().GetEmployeeByID(99).Return(nil, nil)

	err := service.SetGoal(&domain.Goal{EmployeeID: 99, Month: 3, Year: 2024, TargetUnits: 50})
	assert.True(t, errors.Is(err, ErrEmployeeNotFound))
}
