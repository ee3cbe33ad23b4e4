package model

// Role determines which operations a user may call.
type Role string

const (
	RoleOwner     Role = "owner"     // full access
	RoleWarehouse Role = "warehouse" // stock management, read products
	RoleCashier   Role = "cashier"   // checkout, read products
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleWarehouse, RoleCashier:
		return true
	}
	return false
}
