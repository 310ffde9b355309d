package services

import (
	"fmt"

	"github.com/google/uuid"

	"chronos/internal/models"
	"chronos/internal/state"
)

type UserDraft struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type UserService interface {
	Add(draft UserDraft) (*models.User, error)
	Update(id string, upd models.UserUpdate) (*models.User, error)
	Delete(id string) error
	// SetCurrent switches the acting operator; all subsequent mutations
	// are attributed to and permission-checked against this user.
	SetCurrent(id string) (*models.User, error)
}

type userService struct {
	container *state.Container
}

func NewUserService(container *state.Container) UserService {
	return &userService{container: container}
}

var validRoles = map[models.Role]bool{
	models.RoleSuperAdmin: true,
	models.RoleAdmin:      true,
	models.RoleManager:    true,
	models.RoleStaff:      true,
}

func (s *userService) Add(draft UserDraft) (*models.User, error) {
	if draft.Role == "" {
		draft.Role = models.RoleStaff
	}
	if !validRoles[draft.Role] {
		return nil, fmt.Errorf("unknown role %q", draft.Role)
	}
	user := models.User{
		ID:    uuid.New().String(),
		Name:  draft.Name,
		Email: draft.Email,
		Role:  draft.Role,
	}
	s.container.Mutate(func(st *models.AppState) bool {
		st.Users = append(st.Users, user)
		return true
	})
	return &user, nil
}

func (s *userService) Update(id string, upd models.UserUpdate) (*models.User, error) {
	if upd.Role != nil && !validRoles[*upd.Role] {
		return nil, fmt.Errorf("unknown role %q", *upd.Role)
	}
	var out *models.User
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		u := st.UserByID(id)
		if u == nil {
			return false
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil {
			u.Email = *upd.Email
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Suspended != nil {
			u.Suspended = *upd.Suspended
		}
		out = u
		err = nil
		return true
	})
	return out, err
}

func (s *userService) Delete(id string) error {
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		for i := range st.Users {
			if st.Users[i].ID == id {
				st.Users = append(st.Users[:i], st.Users[i+1:]...)
				if st.CurrentUserID == id {
					st.CurrentUserID = ""
				}
				err = nil
				return true
			}
		}
		return false
	})
	return err
}

func (s *userService) SetCurrent(id string) (*models.User, error) {
	var out *models.User
	err := ErrNotFound
	s.container.Mutate(func(st *models.AppState) bool {
		u := st.UserByID(id)
		if u == nil {
			return false
		}
		if u.Suspended {
			err = ErrSuspended
			return false
		}
		st.CurrentUserID = u.ID
		out = u
		err = nil
		return true
	})
	return out, err
}
