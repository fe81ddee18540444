package dto

import "time"

// CheckInRequest entrada de POST /api/attendance/checkin.
// Coordenadas como puntero: 0 es un valor válido y la ausencia debe detectarse.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Notes     *string  `json:"notes" validate:"omitempty,max=500"`
}

// CheckOutRequest entrada de POST /api/attendance/checkout.
type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Notes     *string  `json:"notes" validate:"omitempty,max=500"`
}

// AttendanceRecordResponse salida de un registro de asistencia.
type AttendanceRecordResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Username          string     `json:"username,omitempty"` // solo en vistas de gestión
	FullName          string     `json:"fullName,omitempty"`
	WorkDate          string     `json:"workDate"`
	CheckInTime       time.Time  `json:"checkInTime"`
	CheckInLatitude   float64    `json:"checkInLatitude"`
	CheckInLongitude  float64    `json:"checkInLongitude"`
	CheckOutTime      *time.Time `json:"checkOutTime"`
	CheckOutLatitude  *float64   `json:"checkOutLatitude"`
	CheckOutLongitude *float64   `json:"checkOutLongitude"`
	Notes             *string    `json:"notes"`
	WorkedHours       float64    `json:"workedHours"`
}

// TodayResponse salida de GET /api/attendance/today; data es null si no hay registro.
type TodayResponse struct {
	Success bool                      `json:"success"`
	Data    *AttendanceRecordResponse `json:"data"`
}

// AttendanceStatsResponse salida de GET /api/attendance/stats.
type AttendanceStatsResponse struct {
	UserID       string  `json:"userId,omitempty"` // vacío = estadísticas globales
	TotalDays    int     `json:"totalDays"`
	PresentDays  int     `json:"presentDays"`
	AverageHours float64 `json:"averageHours"`
}

// StatsQuery parámetros de GET /api/attendance/stats.
type StatsQuery struct {
	UserID string `query:"userId"`
}
