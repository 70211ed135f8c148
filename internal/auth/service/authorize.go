package service

import (
	"github.com/nathangtg/jangular-auth/internal/auth/domain"
	"github.com/nathangtg/jangular-auth/pkg/constant"
)

// grants maps a role to the "resource:action" pairs it is allowed. "*" in
// either position matches anything.
var grants = map[string][]string{
	constant.RoleAdmin: {"*:*"},
	constant.RoleModerator: {
		"login-history:read",
		"account:read",
	},
	constant.RoleUser: {
		"login-history:read",
		"account:read",
		"account:change-password",
		"session:logout",
	},
}

// Authorize decides whether principal may perform action on resource. It is
// invoked explicitly by callers; nothing injects it.
func Authorize(principal domain.Principal, resource, action string) bool {
	for _, role := range principal.Roles {
		for _, grant := range grants[role] {
			if grantMatches(grant, resource, action) {
				return true
			}
		}
	}

	return false
}

func grantMatches(grant, resource, action string) bool {
	for i := 0; i < len(grant); i++ {
		if grant[i] != ':' {
			continue
		}
		gr, ga := grant[:i], grant[i+1:]

		return (gr == "*" || gr == resource) && (ga == "*" || ga == action)
	}

	return false
}
