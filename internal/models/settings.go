package models

// Permission is a fixed record of capability flags, one instance per
// role. Flags are independently authored; roles do not inherit from each
// other.
type Permission struct {
	ViewTasks       bool `json:"view_tasks"`
	EditTasks       bool `json:"edit_tasks"`
	StartTimer      bool `json:"start_timer"`
	EditTime        bool `json:"edit_time"`
	DownloadReports bool `json:"download_reports"`
	ManageBills     bool `json:"manage_bills"`
	ManageUsers     bool `json:"manage_users"`
	ManageSettings  bool `json:"manage_settings"`
}

// ModuleToggles switch whole dashboard areas on/off.
type ModuleToggles struct {
	Tasks     bool `json:"tasks"`
	Utilities bool `json:"utilities"`
	Reports   bool `json:"reports"`
}

type Settings struct {
	OrgName string        `json:"org_name"`
	LogoURL string        `json:"logo_url,omitempty"`
	Modules ModuleToggles `json:"modules"`
	// AllowManualTime lets users with EditTime overwrite accrued minutes.
	AllowManualTime bool `json:"allow_manual_time"`
	// RolePermissions overrides the builtin role map per role; roles
	// absent here fall back to the builtin set.
	RolePermissions map[Role]Permission `json:"role_permissions,omitempty"`
}

type SettingsUpdate struct {
	OrgName         *string              `json:"org_name"`
	LogoURL         *string              `json:"logo_url"`
	Modules         *ModuleToggles       `json:"modules"`
	AllowManualTime *bool                `json:"allow_manual_time"`
	RolePermissions *map[Role]Permission `json:"role_permissions"`
}
