package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

// AttendanceRepo implementación en memoria de repository.AttendanceRepository.
// La unicidad (usuario, fecha laboral) se comprueba bajo el mismo lock que la inserción.
type AttendanceRepo struct {
	db *attendanceTable
}

// NewAttendanceRepository construye el repositorio sobre db.
func NewAttendanceRepository(db *DB) *AttendanceRepo {
	return &AttendanceRepo{db: db.attendance}
}

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

func (r *AttendanceRepo) Create(_ context.Context, rec *entity.AttendanceRecord) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	for _, existing := range r.db.t {
		if existing.UserID == rec.UserID && existing.WorkDate == rec.WorkDate {
			return domain.ErrAlreadyCheckedIn
		}
	}
	r.db.t[rec.ID] = copyRecord(rec)
	return nil
}

func (r *AttendanceRepo) GetByUserAndDate(_ context.Context, userID, workDate string) (*entity.AttendanceRecord, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, rec := range r.db.t {
		if rec.UserID == userID && rec.WorkDate == workDate {
			return copyRecord(rec), nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepo) CheckOut(_ context.Context, recordID, userID string, data repository.CheckOutData) (*entity.AttendanceRecord, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	rec, ok := r.db.t[recordID]
	if !ok || rec.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if rec.CheckedOut() {
		return nil, domain.ErrAlreadyCheckedOut
	}
	t := data.Time
	rec.CheckOutTime = &t
	rec.CheckOutLatitude = decimal.NewNullDecimal(decimal.NewFromFloat(data.Latitude))
	rec.CheckOutLongitude = decimal.NewNullDecimal(decimal.NewFromFloat(data.Longitude))
	if data.Notes != nil {
		notes := *data.Notes
		rec.Notes = &notes
	}
	return copyRecord(rec), nil
}

func (r *AttendanceRepo) ListByUser(_ context.Context, userID string, rng repository.DateRange) ([]*entity.AttendanceRecord, error) {
	return r.list(func(rec *entity.AttendanceRecord) bool {
		return rec.UserID == userID && inRange(rec.WorkDate, rng)
	}), nil
}

func (r *AttendanceRepo) ListAll(_ context.Context, rng repository.DateRange) ([]*entity.AttendanceRecord, error) {
	return r.list(func(rec *entity.AttendanceRecord) bool {
		return inRange(rec.WorkDate, rng)
	}), nil
}

// list ordena por fecha laboral y hora de entrada descendentes.
func (r *AttendanceRepo) list(keep func(*entity.AttendanceRecord) bool) []*entity.AttendanceRecord {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	out := make([]*entity.AttendanceRecord, 0, len(r.db.t))
	for _, rec := range r.db.t {
		if keep(rec) {
			out = append(out, copyRecord(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WorkDate != out[j].WorkDate {
			return out[i].WorkDate > out[j].WorkDate
		}
		return out[i].CheckInTime.After(out[j].CheckInTime)
	})
	return out
}

// inRange compara fechas AAAA-MM-DD como texto; el orden lexicográfico coincide con el cronológico.
func inRange(workDate string, rng repository.DateRange) bool {
	if !rng.Active() {
		return true
	}
	return workDate >= rng.Start && workDate <= rng.End
}

func copyRecord(rec *entity.AttendanceRecord) *entity.AttendanceRecord {
	cp := *rec
	if rec.CheckOutTime != nil {
		t := *rec.CheckOutTime
		cp.CheckOutTime = &t
	}
	if rec.Notes != nil {
		n := *rec.Notes
		cp.Notes = &n
	}
	return &cp
}
