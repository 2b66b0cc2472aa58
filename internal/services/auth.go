// Package services holds the business logic between HTTP handlers and
// the store.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/model"
	"github.com/daybook-app/daybook/internal/store"
)

// AuthService registers and authenticates users and issues tokens.
type AuthService struct {
	store  store.Store
	tokens *auth.TokenIssuer
}

func NewAuthService(s store.Store, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{store: s, tokens: tokens}
}

// Session is the result of a successful register or login.
type Session struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register creates a user and returns a fresh session. An already
// registered email yields model.ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*Session, error) {
	if _, err := s.store.Users().GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, model.ErrConflict)
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := s.store.Users().Create(ctx, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	return s.newSession(u)
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller, both return model.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.store.Users().GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, model.ErrUnauthorized
	}
	return s.newSession(u)
}

// UpdateUsername changes the display name of an existing user.
func (s *AuthService) UpdateUsername(ctx context.Context, userID, username string) (*model.User, error) {
	return s.store.Users().UpdateUsername(ctx, userID, username)
}

func (s *AuthService) newSession(u *model.User) (*Session, error) {
	token, err := s.tokens.Issue(u.UserID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: u}, nil
}
