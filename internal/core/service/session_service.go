package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
	"github.com/meetpoint/meetpoint-client/internal/core/ports"
)

// defaultCategoryID is used when the requested category name matches none of
// the categories returned by GET /tipos, or when the lookup itself fails.
// Registration is never blocked on the category lookup.
const defaultCategoryID = 1

// Session implements ports.SessionService. It is an explicitly owned,
// dependency-injected object: tests instantiate isolated sessions in
// parallel, there is no package-level singleton.
type Session struct {
	gateway ports.Gateway
	log     zerolog.Logger

	// op serializes Login/Register/Logout. A second concurrent call blocks
	// until the first completes instead of racing on user/lastErr.
	op sync.Mutex

	mu      sync.RWMutex
	user    *domain.User
	lastErr string
	loading bool
}

var _ ports.SessionService = (*Session)(nil)

func NewSession(gateway ports.Gateway, log zerolog.Logger) *Session {
	return &Session{gateway: gateway, log: log}
}

// Login authenticates against the kind-specific endpoint and, on success,
// replaces the current user wholesale. On failure the session reverts to
// anonymous, lastErr is set, and the error is returned so the caller can
// react locally.
func (s *Session) Login(ctx context.Context, email, password string, kind domain.AccountKind) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	var (
		res ports.AuthResult
		err error
	)
	if kind == domain.AccountBusiness {
		res, err = s.gateway.LoginBusiness(ctx, email, password)
	} else {
		res, err = s.gateway.LoginCustomer(ctx, email, password)
	}
	if err != nil {
		s.recordFailure(err, domain.MsgLoginFailed)
		return err
	}

	s.adopt(res.User, kind)
	s.log.Info().Str("user_id", res.User.ID).Str("kind", string(kind)).Msg("login succeeded")
	return nil
}

// Register creates a kind-specific account. Business registrations first
// resolve the category name to a tipo id, falling back to defaultCategoryID
// rather than aborting. Success and failure handling mirror Login.
func (s *Session) Register(ctx context.Context, in ports.RegistrationInput) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	var (
		res ports.AuthResult
		err error
	)
	if in.Kind == domain.AccountBusiness {
		res, err = s.gateway.RegisterBusiness(ctx, ports.BusinessRegistrationInput{
			Name:        in.Name,
			Email:       in.Email,
			Password:    in.Password,
			Phone:       in.Phone,
			CNPJ:        in.CNPJ,
			Address:     in.Address,
			Description: in.Description,
			TipoID:      s.resolveCategory(ctx, in.Category),
			Category:    in.Category,
		})
	} else {
		res, err = s.gateway.RegisterCustomer(ctx, ports.CustomerRegistrationInput{
			Name:     in.Name,
			Email:    in.Email,
			Password: in.Password,
			Phone:    in.Phone,
			CPF:      in.CPF,
		})
	}
	if err != nil {
		s.recordFailure(err, domain.MsgRegisterFailed)
		return err
	}

	s.adopt(res.User, in.Kind)
	s.log.Info().Str("user_id", res.User.ID).Str("kind", string(in.Kind)).Msg("registration succeeded")
	return nil
}

// Logout destroys the credential and always leaves the session anonymous,
// even when the gateway call fails. The failure is logged, never surfaced.
func (s *Session) Logout(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gateway.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("logout cleanup failed, clearing session anyway")
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
	return nil
}

// UpdateUser merges patch into the current user in memory. No-op when
// anonymous. Local-only by design; see the gateway profile update calls for
// the server round-trip.
func (s *Session) UpdateUser(patch ports.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		s.user.Avatar = *patch.Avatar
	}
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *Session) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is a pure local projection: a stored token is treated as
// unverified until the first authenticated call fails with 401.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// resolveCategory maps a category name to its tipo id via GET /tipos.
// Comparison is case-insensitive with surrounding whitespace trimmed.
func (s *Session) resolveCategory(ctx context.Context, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultCategoryID
	}

	categories, err := s.gateway.Categories(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("category", name).Msg("category lookup failed, using default tipo")
		return defaultCategoryID
	}
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c.ID
		}
	}

	s.log.Debug().Str("category", name).Msg("category not found, using default tipo")
	return defaultCategoryID
}

// adopt installs the authenticated user and clears any previous error.
// Kind is forced from the dispatched endpoint rather than trusted from the
// payload projection.
func (s *Session) adopt(u domain.User, kind domain.AccountKind) {
	u.Kind = kind
	if kind == domain.AccountBusiness && u.BusinessID == "" {
		u.BusinessID = u.ID
	}

	s.mu.Lock()
	s.user = &u
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Session) recordFailure(err error, fallback string) {
	msg := domain.UserMessage(err, fallback)

	s.mu.Lock()
	s.user = nil
	s.lastErr = msg
	s.mu.Unlock()

	s.log.Warn().Err(err).Msg("auth operation failed")
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
