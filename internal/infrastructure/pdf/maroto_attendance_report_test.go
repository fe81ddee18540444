package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appattendance "github.com/jhoicas/tanpopo-api/internal/application/attendance"
	"github.com/jhoicas/tanpopo-api/internal/domain/attendance"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/pdf"
)

func TestAttendanceReport_GeneraPDF(t *testing.T) {
	in := time.Date(2026, 10, 15, 7, 30, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	data := appattendance.ReportData{
		SchoolName:  "Tanpopo Academy",
		GeneratedBy: "admin",
		GeneratedAt: in,
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-31",
		Rows: []appattendance.ReportRow{
			{FullName: "Co Lan", Username: "lan", WorkDate: "2026-10-15", CheckInTime: in, CheckOutTime: &out, Hours: 8.5, Notes: "ok"},
			{FullName: "Co Mai", Username: "mai", WorkDate: "2026-10-15", CheckInTime: in},
		},
		Stats: attendance.Stats{TotalDays: 1, PresentDays: 1, AverageHours: 8.5},
	}

	b, err := pdf.NewMarotoReportGenerator().AttendanceReport(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestAttendanceReport_SinFilas(t *testing.T) {
	b, err := pdf.NewMarotoReportGenerator().AttendanceReport(appattendance.ReportData{
		SchoolName:  "Tanpopo Academy",
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
