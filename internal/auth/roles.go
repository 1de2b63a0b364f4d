package auth

import "errors"

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// ValidateRole checks that a role value is one the platform knows.
func ValidateRole(role string) error {
	switch role {
	case RoleStudent, RoleRecruiter:
		return nil
	default:
		return errors.New("invalid role")
	}
}
