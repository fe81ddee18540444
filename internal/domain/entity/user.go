package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un miembro del personal con acceso al portal interno.
type User struct {
	ID           string
	Username     string // único, normalizado con NormalizeUsername
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, staff
	FullName     string
	Email        *string
	Phone        *string
	IsActive     bool // baja lógica: false = eliminado
	CreatedAt    time.Time
	CreatedBy    *string // ID del admin que creó la cuenta
}

// NormalizeUsername aplica case folding Unicode y recorta espacios para comparar usuarios.
// Un Caser guarda estado, por eso se crea uno por llamada.
func NormalizeUsername(username string) string {
	return cases.Fold().String(strings.TrimSpace(username))
}
