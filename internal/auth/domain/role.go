package domain

// Well known role names seeded by migration.
const (
	RoleBorrower         = "BORROWER"
	RoleEquipmentManager = "EQUIPMENT_MANAGER"
	RoleSupervisor       = "SUPERVISOR"
	RoleAdmin            = "ADMIN"
)

type Role struct {
	ID          string
	Name        string
	Description string
}

// Department is an office that owns equipment, e.g. ITRO.
type Department struct {
	ID      string
	Acronym string
	Name    string
}
