package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func sampleSales() []*domain.SaleEntry {
	return []*domain.SaleEntry{
		{
			ID:           1,
			EmployeeID:   3,
			EmployeeName: "Ana",
			Department:   domain.DepartmentStore,
			Date:         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Counts:       domain.CategoryCounts{SelfLiquidating: 2, HouseBrand: 1},
			Comments:     "cliente recorrente",
		},
		{
			ID:           2,
			EmployeeID:   4,
			EmployeeName: "Bruno",
			Department:   domain.DepartmentDrugstore,
			Date:         time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			Counts:       domain.CategoryCounts{WeeklyOffer: 5},
		},
	}
}

func TestExportSales_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().ListSales(gomock.Any()).Return(sampleSales(), nil)

	service := &Service{
		saleRepo: mockSaleRepo,
		now:      func() time.Time { return time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC) },
	}

	export, err := service.ExportSales(FormatCSV, domain.SaleFilter{})
	require.NoError(t, err)

	assert.Equal(t, "sales_20240320_103000.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Date", "Employee", "Department",
		"Self-liquidating", "Weekly offer", "House brand", "Additional",
		"Total", "Comments",
	}, records[0])

	assert.Equal(t, []string{"2024-03-15", "Ana", "Store", "2", "0", "1", "0", "3", "cliente recorrente"}, records[1])
	assert.Equal(t, []string{"2024-03-16", "Bruno", "Drugstore", "0", "5", "0", "0", "5", ""}, records[2])
}

func TestExportSales_XLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().ListSales(gomock.Any()).Return(sampleSales(), nil)

	service := &Service{
		saleRepo: mockSaleRepo,
		now:      func() time.Time { return time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC) },
	}

	export, err := service.ExportSales(FormatXLSX, domain.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, "sales_20240320_103000.xlsx", export.Filename)

	file, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Ana", rows[1][1])
	assert.Equal(t, "5", rows[2][4])
}

func TestExportSales_FormatoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{saleRepo: mocks.NewMockSaleRepository(ctrl), now: time.Now}

	_, err := service.ExportSales("pdf", domain.SaleFilter{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestExportSales_SemRegistros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockSaleRepo.EXPECT().ListSales(gomock.Any()).Return([]*domain.SaleEntry{}, nil)

	service := &Service{saleRepo: mockSaleRepo, now: time.Now}

	export, err := service.ExportSales(FormatCSV, domain.SaleFilter{})
	require.NoError(t, err)

	// Apenas o cabeçalho
	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
