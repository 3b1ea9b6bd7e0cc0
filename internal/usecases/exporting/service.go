package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-tracker-api/infrastructure/repository"
	"github.com/vfg2006/sales-tracker-api/internal/domain"
	errorcodes "github.com/vfg2006/sales-tracker-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

// Formatos de exportação aceitos
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const exportSheet = "Vendas"

var exportHeader = []string{
	"Date", "Employee", "Department",
	"Self-liquidating", "Weekly offer", "House brand", "Additional",
	"Total", "Comments",
}

// Export é o arquivo gerado pronto para download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportingService materializa as vendas filtradas em CSV ou XLSX.
type ExportingService interface {
	ExportSales(format string, filter domain.SaleFilter) (*Export, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewService(saleRepo repository.SaleRepository) ExportingService {
	return &Service{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

func (s *Service) ExportSales(format string, filter domain.SaleFilter) (*Export, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, NewExportingError(ErrUnsupportedFormat, errorcodes.ErrInvalidFormat, "Formato não suportado: "+format)
	}

	sales, err := s.saleRepo.ListSales(filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas para exportação")
		return nil, NewExportingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, "Erro ao listar vendas")
	}

	timestamp := s.now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := renderCSV(sales)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar CSV de vendas")
			return nil, NewExportingError(ErrRenderFailed, errorcodes.ErrInternalServer, "Erro ao gerar CSV")
		}
		return &Export{
			Filename:    fmt.Sprintf("sales_%s.csv", timestamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	default:
		data, err := renderXLSX(sales)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar XLSX de vendas")
			return nil, NewExportingError(ErrRenderFailed, errorcodes.ErrInternalServer, "Erro ao gerar XLSX")
		}
		return &Export{
			Filename:    fmt.Sprintf("sales_%s.xlsx", timestamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
}

func renderCSV(sales []*domain.SaleEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, sale := range sales {
		record := []string{
			sale.Date.Format(time.DateOnly),
			sale.EmployeeName,
			string(sale.Department),
			strconv.Itoa(sale.Counts.SelfLiquidating),
			strconv.Itoa(sale.Counts.WeeklyOffer),
			strconv.Itoa(sale.Counts.HouseBrand),
			strconv.Itoa(sale.Counts.Additional),
			strconv.Itoa(sale.Counts.Total()),
			sale.Comments,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderXLSX(sales []*domain.SaleEntry) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(exportSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, sale := range sales {
		values := []interface{}{
			sale.Date.Format(time.DateOnly),
			sale.EmployeeName,
			string(sale.Department),
			sale.Counts.SelfLiquidating,
			sale.Counts.WeeklyOffer,
			sale.Counts.HouseBrand,
			sale.Counts.Additional,
			sale.Counts.Total(),
			sale.Comments,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
