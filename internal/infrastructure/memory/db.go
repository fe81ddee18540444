// Package memory implementa los repositorios en memoria (STORAGE_DRIVER=memory y tests).
// Cada tabla tiene su propio RWMutex y los repositorios entregan copias, nunca punteros internos.
package memory

import (
	"sync"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

type (
	// DB agrupa las tablas en memoria.
	DB struct {
		users         *userTable
		attendance    *attendanceTable
		homepage      *homepageTable
		registrations *registrationTable
		contacts      *contactTable
	}

	userTable struct {
		t     map[string]*entity.User
		mutex sync.RWMutex
	}

	attendanceTable struct {
		t     map[string]*entity.AttendanceRecord
		mutex sync.RWMutex
	}

	homepageTable struct {
		t     map[string]*entity.HomepageContent
		mutex sync.RWMutex
	}

	registrationTable struct {
		t     []entity.Registration
		mutex sync.RWMutex
	}

	contactTable struct {
		t     []entity.ContactMessage
		mutex sync.RWMutex
	}
)

// Open crea una base vacía.
func Open() *DB {
	return &DB{
		users:         &userTable{t: make(map[string]*entity.User)},
		attendance:    &attendanceTable{t: make(map[string]*entity.AttendanceRecord)},
		homepage:      &homepageTable{t: make(map[string]*entity.HomepageContent)},
		registrations: &registrationTable{},
		contacts:      &contactTable{},
	}
}
