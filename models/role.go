package models

// Role is the closed set of account roles. Authorization checks compare
// against these values directly, there is no permission table behind them.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleProfessional   Role = "PROFESSIONAL"
	RoleRegisteredUser Role = "REGISTERED_USER"
	RoleGuest          Role = "GUEST"
)

// IsValid reports whether r is one of the defined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProfessional, RoleRegisteredUser, RoleGuest:
		return true
	}
	return false
}

// CanManageSchedules reports whether the role may delete schedule entries.
func (r Role) CanManageSchedules() bool {
	return r == RoleAdmin || r == RoleProfessional
}

// CanUpdateNotifications reports whether the role may flip a notification's
// read flag. Guests cannot.
func (r Role) CanUpdateNotifications() bool {
	return r == RoleAdmin || r == RoleProfessional || r == RoleRegisteredUser
}
