package domain

import "strings"

// Role is a bit set of staffing capabilities attached to an account.
type Role uint8

const (
	RoleTA Role = 1 << iota
	RoleInstructor
	RoleAdmin
	RoleSupervisor
)

// ValidRoleTokens is the display order used in error messages.
var ValidRoleTokens = []string{"supervisor", "admin", "ta", "instructor"}

var roleTokens = map[string]Role{
	"ta":         RoleTA,
	"instructor": RoleInstructor,
	"admin":      RoleAdmin,
	"supervisor": RoleSupervisor,
}

// ParseRole maps a lower-case command-line token to its role bit.
func ParseRole(token string) (Role, bool) {
	role, ok := roleTokens[strings.ToLower(token)]
	return role, ok
}

func (r Role) Has(role Role) bool {
	return r&role != 0
}

func (r Role) IsTA() bool {
	return r.Has(RoleTA)
}

func (r Role) IsInstructor() bool {
	return r.Has(RoleInstructor)
}

// CanAdminister reports whether the role set may manage accounts and courses.
func (r Role) CanAdminister() bool {
	return r.Has(RoleAdmin) || r.Has(RoleSupervisor)
}

// Tokens returns the lower-case tokens of every bit present, in the
// canonical ta, instructor, admin, supervisor order.
func (r Role) Tokens() []string {
	ordered := []string{"ta", "instructor", "admin", "supervisor"}
	tokens := make([]string, 0, len(ordered))
	for _, token := range ordered {
		if r.Has(roleTokens[token]) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
