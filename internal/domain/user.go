package domain

import (
	"context"
	"time"
)

// Principal is the authenticated participant behind a request.
type Principal struct {
	ParticipantID string
	Role          Role
}

// PasswordHasher hashes and verifies participant passphrases.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated participant.
type TokenIssuer interface {
	Issue(participantID string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated participant.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}

// AuthService logs participants of the fixed wallet set in.
type AuthService interface {
	Login(ctx context.Context, participantID, passphrase string) (token string, wallet *Wallet, err error)
}
