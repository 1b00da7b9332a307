package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role controls what a back-office operator may do with wizard sessions.
// Viewers can inspect state, operators run the wizard, admins additionally
// abandon other operators' sessions.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
