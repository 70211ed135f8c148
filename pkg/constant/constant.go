package constant

const (
	RoleUser      = "ROLE_USER"
	RoleAdmin     = "ROLE_ADMIN"
	RoleModerator = "ROLE_MODERATOR"
)

const (
	// PasswordHistoryDepth is the number of most recent password hashes a new
	// password is compared against before a change is accepted.
	PasswordHistoryDepth = 5

	// DefaultBcryptCost matches the work factor used when no cost is configured.
	DefaultBcryptCost = 12

	MinPasswordLength = 8
)
