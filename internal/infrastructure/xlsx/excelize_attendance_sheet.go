// Package xlsx exporta la asistencia del personal como planilla Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appattendance "github.com/jhoicas/tanpopo-api/internal/application/attendance"
)

const (
	sheetRecords = "Asistencia"
	sheetSummary = "Resumen"
)

var header = []interface{}{"Fecha", "Usuario", "Nombre", "Entrada", "Salida", "Horas", "Notas"}

var _ appattendance.SpreadsheetGenerator = (*ExcelizeSheetGenerator)(nil)

// ExcelizeSheetGenerator implementa attendance.SpreadsheetGenerator con excelize.
type ExcelizeSheetGenerator struct{}

// NewExcelizeSheetGenerator construye el generador.
func NewExcelizeSheetGenerator() *ExcelizeSheetGenerator { return &ExcelizeSheetGenerator{} }

// AttendanceSheet una hoja con los registros y otra con el resumen.
func (g *ExcelizeSheetGenerator) AttendanceSheet(data appattendance.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRecords); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	if err := f.SetSheetRow(sheetRecords, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if err := f.SetCellStyle(sheetRecords, "A1", "G1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	for i, r := range data.Rows {
		checkOut := ""
		if r.CheckOutTime != nil {
			checkOut = r.CheckOutTime.Format("15:04")
		}
		row := []interface{}{
			r.WorkDate,
			r.Username,
			r.FullName,
			r.CheckInTime.Format("15:04"),
			checkOut,
			r.Hours,
			r.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetRecords, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheetRecords, "C", "C", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetRecords, "G", "G", 40); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	period := "Todo el historial"
	if data.StartDate != "" && data.EndDate != "" {
		period = data.StartDate + " a " + data.EndDate
	}
	summary := [][]interface{}{
		{"Escuela", data.SchoolName},
		{"Período", period},
		{"Generado por", data.GeneratedBy},
		{"Generado", data.GeneratedAt.Format("2006-01-02 15:04")},
		{"Días totales", data.Stats.TotalDays},
		{"Días presentes", data.Stats.PresentDays},
		{"Horas promedio", data.Stats.AverageHours},
	}
	for i, row := range summary {
		row := row
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, fmt.Errorf("xlsx: resumen: %w", err)
		}
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
