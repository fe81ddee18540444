package attendance

import "github.com/jhoicas/tanpopo-api/internal/domain/entity"

// Stats resumen de asistencia sobre un conjunto de registros.
type Stats struct {
	TotalDays    int     // fechas laborales distintas
	PresentDays  int     // registros con entrada y salida
	AverageHours float64 // horas promedio sobre PresentDays; 0 si no hay días presentes
}

// ComputeStats recorre los registros y calcula días totales, días presentes y promedio de horas.
func ComputeStats(records []*entity.AttendanceRecord) Stats {
	dates := make(map[string]struct{}, len(records))
	var present int
	var totalHours float64
	for _, r := range records {
		if r == nil {
			continue
		}
		dates[r.WorkDate] = struct{}{}
		if r.CheckedOut() {
			present++
			totalHours += r.WorkedHours()
		}
	}
	s := Stats{TotalDays: len(dates), PresentDays: present}
	if present > 0 {
		s.AverageHours = totalHours / float64(present)
	}
	return s
}
