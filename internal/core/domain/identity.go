package domain

const (
	RoleUser       = "ROLE_USER"
	RoleAdmin      = "ROLE_ADMIN"
	RoleHeister    = "ROLE_HEISTER"
	RoleContractor = "ROLE_CONTRACTOR"
	RoleEmployee   = "ROLE_EMPLOYEE"
)

// Identity is the authenticated user resolved for the current request.
// It is rebuilt from the bearer token on every request and never cached.
type Identity struct {
	ID                  string   `json:"id"`
	Username            string   `json:"username"`
	Email               string   `json:"email,omitempty"`
	Roles               []string `json:"roles"`
	EmployeeID          string   `json:"employee_id,omitempty"`
	ContractorRequestID string   `json:"contractor_request_id,omitempty"`
}

// HasRole reports whether the identity carries the given role. Every account
// is expected to carry at least ROLE_USER, but an empty role set is still
// treated as "no role" rather than assumed away.
func (i *Identity) HasRole(role string) bool {
	if i == nil {
		return false
	}
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries ROLE_ADMIN.
func (i *Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
