package attendance

import (
	"time"

	"github.com/jhoicas/tanpopo-api/internal/domain/attendance"
)

// ReportRow una fila del reporte: un registro con el nombre del usuario.
type ReportRow struct {
	FullName     string
	Username     string
	WorkDate     string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Hours        float64
	Notes        string
}

// ReportData contenido completo del reporte de asistencia.
type ReportData struct {
	SchoolName  string
	GeneratedBy string
	GeneratedAt time.Time
	StartDate   string // vacío = sin filtro
	EndDate     string
	Rows        []ReportRow
	Stats       attendance.Stats
}

// ReportGenerator puerto para renderizar el reporte (PDF en infraestructura).
type ReportGenerator interface {
	AttendanceReport(data ReportData) ([]byte, error)
}

// SpreadsheetGenerator puerto para exportar los mismos datos como planilla.
type SpreadsheetGenerator interface {
	AttendanceSheet(data ReportData) ([]byte, error)
}
