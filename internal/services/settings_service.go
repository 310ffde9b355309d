package services

import (
	"chronos/internal/models"
	"chronos/internal/state"
)

type SettingsService interface {
	Update(upd models.SettingsUpdate) models.Settings
	ToggleDarkMode() bool
}

type settingsService struct {
	container *state.Container
}

func NewSettingsService(container *state.Container) SettingsService {
	return &settingsService{container: container}
}

func (s *settingsService) Update(upd models.SettingsUpdate) models.Settings {
	var out models.Settings
	s.container.Mutate(func(st *models.AppState) bool {
		if upd.OrgName != nil {
			st.Settings.OrgName = *upd.OrgName
		}
		if upd.LogoURL != nil {
			st.Settings.LogoURL = *upd.LogoURL
		}
		if upd.Modules != nil {
			st.Settings.Modules = *upd.Modules
		}
		if upd.AllowManualTime != nil {
			st.Settings.AllowManualTime = *upd.AllowManualTime
		}
		if upd.RolePermissions != nil {
			st.Settings.RolePermissions = *upd.RolePermissions
		}
		out = st.Settings
		return true
	})
	return out
}

func (s *settingsService) ToggleDarkMode() bool {
	var out bool
	s.container.Mutate(func(st *models.AppState) bool {
		st.DarkMode = !st.DarkMode
		out = st.DarkMode
		return true
	})
	return out
}
