package entity

import "time"

// Roles válidos para Profile.
const (
	RoleAdmin   = "admin"
	RoleSales   = "sales"
	RolePricing = "pricing"
	RoleUser    = "user"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleSales, RolePricing, RoleUser:
		return true
	}
	return false
}

// Profile asocia una identidad del proveedor con su rol de autorización.
// Cada identidad tiene a lo sumo un perfil; la ausencia implica rol "user".
type Profile struct {
	UserID    string
	FirstName string
	LastName  string
	Role      string // admin, sales, pricing, user
	CreatedAt time.Time
	UpdatedAt time.Time
}
