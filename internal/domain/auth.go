package domain

import "time"

// RoleAdmin is the token role allowed to delete donations.
const RoleAdmin = "admin"

// TokenIssuer issues tokens (e.g. JWT) for an operator.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject and roles.
type TokenVerifier interface {
	Verify(token string) (subject string, roles []string, err error)
}
