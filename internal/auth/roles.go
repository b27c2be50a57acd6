package auth

import (
	"fmt"
	"strings"
)

// Role is the access level carried in a session claim.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole maps a string to a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Operation is an action a handler wants to perform on a resource.
type Operation string

const (
	OpRead          Operation = "read"
	OpCreate        Operation = "create"
	OpUpdate        Operation = "update"
	OpDelete        Operation = "delete"
	OpViewDashboard Operation = "view_dashboard"
	OpViewAudit     Operation = "view_audit"
)

var policy = map[Operation][]Role{
	OpRead:          {RoleAdmin, RoleLeader, RoleMember},
	OpCreate:        {RoleAdmin, RoleLeader},
	OpUpdate:        {RoleAdmin, RoleLeader},
	OpDelete:        {RoleAdmin},
	OpViewDashboard: {RoleAdmin, RoleLeader},
	OpViewAudit:     {RoleAdmin},
}

// Authorize returns nil when role may perform op and ErrForbidden otherwise.
// Unknown roles and unknown operations are always denied.
func Authorize(role Role, op Operation) error {
	for _, allowed := range policy[op] {
		if role == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q cannot %s", ErrForbidden, role, op)
}

// Require is Authorize for a possibly missing session: a nil claim yields
// ErrUnauthorized.
func Require(claim *Claim, op Operation) error {
	if claim == nil {
		return ErrUnauthorized
	}
	return Authorize(claim.Role, op)
}
