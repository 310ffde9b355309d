package authz

import "chronos/internal/models"

// rolePermissions is authored once at startup; each role's set is
// independent, there is no inheritance between roles.
var rolePermissions = map[models.Role]models.Permission{
	models.RoleSuperAdmin: {
		ViewTasks: true, EditTasks: true, StartTimer: true, EditTime: true,
		DownloadReports: true, ManageBills: true, ManageUsers: true, ManageSettings: true,
	},
	models.RoleAdmin: {
		ViewTasks: true, EditTasks: true, StartTimer: true, EditTime: true,
		DownloadReports: true, ManageBills: true, ManageUsers: true,
	},
	models.RoleManager: {
		ViewTasks: true, EditTasks: true, StartTimer: true,
		DownloadReports: true, ManageBills: true,
	},
	models.RoleStaff: {
		ViewTasks: true, StartTimer: true,
	},
}

// PermissionsFor is a pure lookup; unknown roles get the empty set.
func PermissionsFor(role models.Role) models.Permission {
	return rolePermissions[role]
}

// Effective applies the per-role overrides from settings on top of the
// builtin map. Enforcement is advisory only: there is no second trust
// boundary behind this service.
func Effective(settings models.Settings, role models.Role) models.Permission {
	if p, ok := settings.RolePermissions[role]; ok {
		return p
	}
	return PermissionsFor(role)
}

func IsElevated(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}
