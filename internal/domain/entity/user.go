package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
	RoleCliente  = "cliente"
)

// ValidRole reporta si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmpleado, RoleCliente:
		return true
	}
	return false
}

// User representa un usuario del sistema (personal interno o cliente).
type User struct {
	ID           int64
	Name         string
	Email        string // único, comparación case-insensitive
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, empleado, cliente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
