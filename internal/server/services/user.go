// Package services contains the server-side business logic. This file
// implements UserService: registration, login, token issuance, and identity
// resolution from a bearer token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dberzins/snippetflow/internal/common"
	"github.com/dberzins/snippetflow/internal/server/auth"
	"github.com/dberzins/snippetflow/internal/server/config"
	"github.com/dberzins/snippetflow/internal/server/models"
	"github.com/dberzins/snippetflow/internal/server/repositories/repomanager"
)

// Token is the issued credential returned by Login. TokenType is always
// "bearer".
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserService provides authentication-related operations:
//   - Register: create users
//   - Login: verify credentials and mint a token
//   - ResolveIdentity: map a bearer token back to the current user record
//
// There is no server-side session state: Logout is a client-side discard of
// the token and no revocation list exists, so an issued token stays valid
// until it expires.
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user, storing a one-way hash of the password.
// A user with the same email (exact match) yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, username, email, password, fullName string, disabled bool) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Disabled:     disabled,
	}
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the username/password pair and, on success, issues a bearer
// token whose subject is the username and whose expiry is now plus the
// configured validity (30 minutes by default). An unknown username and a
// wrong password both return common.ErrorUnauthorized with nothing to tell
// them apart.
func (s *UserService) Login(ctx context.Context, username, password string) (*Token, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	access, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Token{AccessToken: access, TokenType: "bearer"}, nil
}

// Logout is a stateless no-op: the server holds no session state, so logging
// out is purely a client-side discard of the token. Known limitation of this
// design — the token remains verifiable until expiry.
func (s *UserService) Logout() {}

// ResolveIdentity verifies the token and re-reads the user record for its
// subject, so a user disabled or removed after issuance is reflected
// immediately. Invalid, malformed or expired tokens yield
// common.ErrorUnauthorized; a subject that no longer resolves yields
// common.ErrorNotFound.
func (s *UserService) ResolveIdentity(ctx context.Context, tokenString string) (*models.User, error) {
	subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
