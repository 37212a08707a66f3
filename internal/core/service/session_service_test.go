package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
)

// stubGateway overrides only the calls a test exercises; anything else
// panics through the embedded nil interface, which is the desired failure.
type stubGateway struct {
	ports.Gateway

	loginCustomerFn    func(ctx context.Context, email, password string) (ports.AuthResult, error)
	loginBusinessFn    func(ctx context.Context, email, password string) (ports.AuthResult, error)
	registerCustomerFn func(ctx context.Context, in ports.CustomerRegistrationInput) (ports.AuthResult, error)
	registerBusinessFn func(ctx context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error)
	categoriesFn       func(ctx context.Context) ([]domain.Category, error)
	logoutFn           func(ctx context.Context) error
}

func (s *stubGateway) LoginCustomer(ctx context.Context, email, password string) (ports.AuthResult, error) {
	return s.loginCustomerFn(ctx, email, password)
}

func (s *stubGateway) LoginBusiness(ctx context.Context, email, password string) (ports.AuthResult, error) {
	return s.loginBusinessFn(ctx, email, password)
}

func (s *stubGateway) RegisterCustomer(ctx context.Context, in ports.CustomerRegistrationInput) (ports.AuthResult, error) {
	return s.registerCustomerFn(ctx, in)
}

func (s *stubGateway) RegisterBusiness(ctx context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error) {
	return s.registerBusinessFn(ctx, in)
}

func (s *stubGateway) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categoriesFn(ctx)
}

func (s *stubGateway) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func TestSession_LoginSuccess(t *testing.T) {
	stub := &stubGateway{
		loginCustomerFn: func(_ context.Context, email, password string) (ports.AuthResult, error) {
			if email != "ana@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return ports.AuthResult{User: domain.User{ID: "c1", Name: "Ana"}, Token: "tok"}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	if err := session.Login(context.Background(), "ana@example.com", "secret1", domain.AccountCustomer); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user := session.CurrentUser()
	if user == nil {
		t.Fatalf("expected current user after login")
	}
	if user.Kind != domain.AccountCustomer {
		t.Fatalf("expected account kind to match the dispatched endpoint, got %s", user.Kind)
	}
	if !session.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
	if session.LastError() != "" {
		t.Fatalf("expected no error after success, got %q", session.LastError())
	}
}

func TestSession_LoginBusinessDispatch(t *testing.T) {
	stub := &stubGateway{
		loginBusinessFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
			return ports.AuthResult{User: domain.User{ID: "e1", Name: "Café Central"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	if err := session.Login(context.Background(), "cafe@example.com", "secret1", domain.AccountBusiness); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user := session.CurrentUser()
	if user.Kind != domain.AccountBusiness {
		t.Fatalf("expected business kind, got %s", user.Kind)
	}
	if user.BusinessID != "e1" {
		t.Fatalf("expected business id projected from the account id, got %q", user.BusinessID)
	}
}

func TestSession_LoginFailureSetsLastError(t *testing.T) {
	stub := &stubGateway{
		loginCustomerFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
			return ports.AuthResult{}, &domain.APIError{Status: 401, Message: domain.MsgWrongCredential}
		},
	}
	session := NewSession(stub, zerolog.Nop())

	err := session.Login(context.Background(), "ana@example.com", "bad", domain.AccountCustomer)
	if err == nil {
		t.Fatalf("expected error")
	}
	if session.CurrentUser() != nil {
		t.Fatalf("expected anonymous state after failure")
	}
	if session.LastError() != domain.MsgWrongCredential {
		t.Fatalf("expected API message surfaced, got %q", session.LastError())
	}
}

func TestSession_LoginFailureFallbackMessage(t *testing.T) {
	stub := &stubGateway{
		loginCustomerFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
			return ports.AuthResult{}, errors.New("boom")
		},
	}
	session := NewSession(stub, zerolog.Nop())

	_ = session.Login(context.Background(), "ana@example.com", "pw", domain.AccountCustomer)
	if session.LastError() != domain.MsgLoginFailed {
		t.Fatalf("expected generic login fallback, got %q", session.LastError())
	}
}

func TestSession_ClearError(t *testing.T) {
	calls := 0
	stub := &stubGateway{
		loginCustomerFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
			calls++
			if calls == 1 {
				return ports.AuthResult{}, &domain.APIError{Status: 401, Message: domain.MsgWrongCredential}
			}
			return ports.AuthResult{User: domain.User{ID: "c1"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	_ = session.Login(context.Background(), "ana@example.com", "bad", domain.AccountCustomer)
	if session.LastError() == "" {
		t.Fatalf("expected error recorded")
	}

	session.ClearError()
	if session.LastError() != "" {
		t.Fatalf("expected error cleared")
	}

	// A later success must also leave lastError empty on its own.
	_ = session.Login(context.Background(), "ana@example.com", "bad", domain.AccountCustomer)
	session.ClearError()
	if err := session.Login(context.Background(), "ana@example.com", "good", domain.AccountCustomer); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.LastError() != "" {
		t.Fatalf("expected no error after successful login, got %q", session.LastError())
	}
}

func TestSession_LogoutAlwaysReachesAnonymous(t *testing.T) {
	for _, gatewayFails := range []bool{false, true} {
		stub := &stubGateway{
			loginCustomerFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
				return ports.AuthResult{User: domain.User{ID: "c1"}}, nil
			},
			logoutFn: func(_ context.Context) error {
				if gatewayFails {
					return errors.New("storage unavailable")
				}
				return nil
			},
		}
		session := NewSession(stub, zerolog.Nop())

		if err := session.Login(context.Background(), "ana@example.com", "pw", domain.AccountCustomer); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if err := session.Logout(context.Background()); err != nil {
			t.Fatalf("logout must not surface gateway failures, got %v", err)
		}
		if session.CurrentUser() != nil || session.IsAuthenticated() {
			t.Fatalf("expected anonymous state after logout (gatewayFails=%v)", gatewayFails)
		}
	}
}

func TestSession_RegisterBusinessResolvesCategory(t *testing.T) {
	var captured ports.BusinessRegistrationInput
	stub := &stubGateway{
		categoriesFn: func(_ context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: 1, Name: "Restaurante"},
				{ID: 3, Name: "Bar"},
			}, nil
		},
		registerBusinessFn: func(_ context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error) {
			captured = in
			return ports.AuthResult{User: domain.User{ID: "e1"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	err := session.Register(context.Background(), ports.RegistrationInput{
		Kind:     domain.AccountBusiness,
		Name:     "Bar do Zé",
		Email:    "ze@example.com",
		Password: "secret1",
		CNPJ:     "123",
		Address:  "Rua B",
		Category: "bar",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if captured.TipoID != 3 {
		t.Fatalf("expected case-insensitive category match to tipo 3, got %d", captured.TipoID)
	}
}

func TestSession_RegisterBusinessCategoryFallback(t *testing.T) {
	var captured ports.BusinessRegistrationInput
	stub := &stubGateway{
		categoriesFn: func(_ context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: 2, Name: "Café"}}, nil
		},
		registerBusinessFn: func(_ context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error) {
			captured = in
			return ports.AuthResult{User: domain.User{ID: "e1"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	err := session.Register(context.Background(), ports.RegistrationInput{
		Kind:     domain.AccountBusiness,
		Name:     "Sorveteria Gelada",
		Email:    "gelada@example.com",
		Password: "secret1",
		CNPJ:     "456",
		Address:  "Rua C",
		Category: "Sorveteria",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if captured.TipoID != 1 {
		t.Fatalf("expected default tipo 1 when no category matches, got %d", captured.TipoID)
	}
}

func TestSession_RegisterBusinessCategoryLookupFailure(t *testing.T) {
	var captured ports.BusinessRegistrationInput
	stub := &stubGateway{
		categoriesFn: func(_ context.Context) ([]domain.Category, error) {
			return nil, &domain.APIError{Status: 500, Message: domain.MsgServerError}
		},
		registerBusinessFn: func(_ context.Context, in ports.BusinessRegistrationInput) (ports.AuthResult, error) {
			captured = in
			return ports.AuthResult{User: domain.User{ID: "e1"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	err := session.Register(context.Background(), ports.RegistrationInput{
		Kind:     domain.AccountBusiness,
		Name:     "Padaria Pão Quente",
		Email:    "pao@example.com",
		Password: "secret1",
		CNPJ:     "789",
		Address:  "Rua D",
		Category: "Padaria",
	})
	if err != nil {
		t.Fatalf("category lookup failure must not block registration: %v", err)
	}
	if captured.TipoID != 1 {
		t.Fatalf("expected default tipo 1 on lookup failure, got %d", captured.TipoID)
	}
}

func TestSession_RegisterFailureFallbackMessage(t *testing.T) {
	stub := &stubGateway{
		registerCustomerFn: func(_ context.Context, _ ports.CustomerRegistrationInput) (ports.AuthResult, error) {
			return ports.AuthResult{}, errors.New("boom")
		},
	}
	session := NewSession(stub, zerolog.Nop())

	err := session.Register(context.Background(), ports.RegistrationInput{
		Kind:     domain.AccountCustomer,
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret1",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if session.LastError() != domain.MsgRegisterFailed {
		t.Fatalf("expected register fallback message, got %q", session.LastError())
	}
}

func TestSession_UpdateUser(t *testing.T) {
	stub := &stubGateway{
		loginCustomerFn: func(_ context.Context, _, _ string) (ports.AuthResult, error) {
			return ports.AuthResult{User: domain.User{ID: "c1", Name: "Ana", Email: "ana@example.com"}}, nil
		},
	}
	session := NewSession(stub, zerolog.Nop())

	// No-op while anonymous.
	name := "Bia"
	session.UpdateUser(ports.UserPatch{Name: &name})
	if session.CurrentUser() != nil {
		t.Fatalf("update on anonymous session must be a no-op")
	}

	if err := session.Login(context.Background(), "ana@example.com", "pw", domain.AccountCustomer); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	session.UpdateUser(ports.UserPatch{Name: &name})
	user := session.CurrentUser()
	if user.Name != "Bia" {
		t.Fatalf("expected patched name, got %q", user.Name)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("unpatched fields must be preserved, got %q", user.Email)
	}
}
