package domain

// Permission is a capability granted to a principal.
type Permission string

const (
	// PermManageAccounting covers every accounting read and write.
	PermManageAccounting Permission = "accounting.manage"
	// PermAll grants every capability.
	PermAll Permission = "*"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID      string
	TenantID    string
	Permissions []Permission
}

// Can reports whether the principal holds perm.
func (p Principal) Can(perm Permission) bool {
	for _, granted := range p.Permissions {
		if granted == perm || granted == PermAll {
			return true
		}
	}
	return false
}
