package entity

// Role names carried in access tokens and request context
const (
	RoleMOH     = "moh"
	RoleMidwife = "midwife"
	RoleMother  = "mother"
)

// IsValidRole reports whether name is one of the account roles
func IsValidRole(name string) bool {
	switch name {
	case RoleMOH, RoleMidwife, RoleMother:
		return true
	}
	return false
}
