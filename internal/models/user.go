package models

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleStaff      Role = "Staff"
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Suspended bool   `json:"suspended"`
}

type UserUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Role      *Role   `json:"role"`
	Suspended *bool   `json:"suspended"`
}
