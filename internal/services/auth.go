package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fairtix/internal/domain"
)

type authService struct {
	walletRepo  domain.WalletRepository
	hasher      domain.PasswordHasher
	tokenIssuer domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService that logs in participants of the seeded wallet set.
func NewAuthService(walletRepo domain.WalletRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		walletRepo:  walletRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		tokenExpiry: tokenExpiry,
	}
}

// Login checks the participant's passphrase and returns a signed token.
// Unknown participants and wrong passphrases both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, participantID, passphrase string) (string, *domain.Wallet, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	wallet, err := s.walletRepo.GetByOwnerID(ctx, participantID)
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get wallet: %w", err)
	}
	if wallet.PassphraseHash == "" {
		if passphrase != "" {
			return "", nil, domain.ErrInvalidCredentials
		}
	} else if err := s.hasher.Compare(wallet.PassphraseHash, passphrase); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(wallet.OwnerID, wallet.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, wallet, nil
}
