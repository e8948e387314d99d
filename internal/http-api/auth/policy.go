package auth

// Authorization rules. Each rule is a pure function over the caller's claims
// and the resource's declared owner, so handlers and services can apply them
// without reaching back into the request.

// IsAdministrator reports whether the caller holds the Administrator role.
func IsAdministrator(c Claims) bool {
	return c.Role == RoleAdministrator
}

// Owns reports whether the caller's identity matches a resource's declared
// owner email.
func Owns(c Claims, ownerEmail string) bool {
	return c.Email == ownerEmail
}

// CanDeleteComment allows moderators (any role above RegisteredUser) to
// delete any comment, and registered users to delete their own.
func CanDeleteComment(c Claims, ownerEmail string) bool {
	if c.Role != RoleRegisteredUser {
		return true
	}
	return Owns(c, ownerEmail)
}
