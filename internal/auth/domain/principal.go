package domain

// Principal is the authenticated identity extracted from a validated access
// token. It is passed explicitly to every call that needs it; there is no
// ambient current-user lookup.
type Principal struct {
	AccountID int64
	Username  string
	Roles     []string
}

func (p Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}

	return false
}
