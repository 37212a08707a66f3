package ports

import (
	"context"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
)

// RegistrationInput is the kind-discriminated account creation form.
// Customer registrations use CPF; business registrations use CNPJ, Address,
// Description and Category (resolved to a tipo id by the session).
type RegistrationInput struct {
	Kind     domain.AccountKind
	Name     string
	Email    string
	Password string
	Phone    string

	CPF string

	CNPJ        string
	Address     string
	Description string
	Category    string
}

// UserPatch is a partial, local-only update of the current user. Nil fields
// are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// SessionService owns the authentication lifecycle and is the single source
// of truth for "who is logged in". Login, Register and Logout are serialized:
// at most one is in flight at a time.
type SessionService interface {
	Login(ctx context.Context, email, password string, kind domain.AccountKind) error
	Register(ctx context.Context, in RegistrationInput) error
	Logout(ctx context.Context) error

	// UpdateUser merges the patch into the current user in memory only.
	// It is a no-op when nobody is logged in. It does not contact the server;
	// callers wanting a round-trip use the gateway profile update calls.
	UpdateUser(patch UserPatch)

	CurrentUser() *domain.User
	IsAuthenticated() bool
	IsLoading() bool
	LastError() string
	ClearError()
}
