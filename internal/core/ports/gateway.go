package ports

import (
	"context"

	"github.com/meetpoint/meetpoint-client/internal/core/domain"
)

// AuthResult is the outcome of a successful login or registration call.
type AuthResult struct {
	User  domain.User
	Token string
}

// CustomerRegistrationInput carries the fields for POST /clientes.
type CustomerRegistrationInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// BusinessRegistrationInput carries the fields for POST /estabelecimentos.
// TipoID must already be resolved from the category name (see SessionService).
type BusinessRegistrationInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	CNPJ        string
	Address     string
	Description string
	TipoID      int
	Category    string
}

// EstablishmentQuery filters the establishment listing.
type EstablishmentQuery struct {
	Search string
	Tipo   string
	Page   int
	Limit  int
}

// EstablishmentUpdateInput carries the mutable establishment profile fields.
type EstablishmentUpdateInput struct {
	Name        string
	Address     string
	Description string
	Phone       string
	ImageURL    string
}

// RatingInput creates a new rating.
type RatingInput struct {
	EstablishmentID string
	CustomerID      string
	Score           int
	Comment         string
}

// RatingUpdateInput edits an existing rating.
type RatingUpdateInput struct {
	Score   int
	Comment string
}

// CustomerUpdateInput carries the mutable customer profile fields.
type CustomerUpdateInput struct {
	Name  string
	Email string
	Phone string
	CPF   string
}

// Gateway is the single choke point for all backend communication. No other
// component issues network requests. Every failure is a *domain.APIError;
// no call is retried internally.
type Gateway interface {
	LoginCustomer(ctx context.Context, email, password string) (AuthResult, error)
	LoginBusiness(ctx context.Context, email, password string) (AuthResult, error)
	RegisterCustomer(ctx context.Context, in CustomerRegistrationInput) (AuthResult, error)
	RegisterBusiness(ctx context.Context, in BusinessRegistrationInput) (AuthResult, error)

	// Logout destroys the stored credential. There is no server-side session
	// to invalidate; a failure here is a storage failure.
	Logout(ctx context.Context) error

	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByID(ctx context.Context, id int) (domain.Category, error)

	Establishments(ctx context.Context, q EstablishmentQuery) ([]domain.Establishment, error)
	EstablishmentByID(ctx context.Context, id string) (domain.Establishment, error)
	UpdateEstablishment(ctx context.Context, id string, in EstablishmentUpdateInput) (domain.Establishment, error)

	RatingsByEstablishment(ctx context.Context, establishmentID string) ([]domain.Rating, error)
	RatingsByCustomer(ctx context.Context, customerID string) ([]domain.Rating, error)
	CreateRating(ctx context.Context, in RatingInput) (domain.Rating, error)
	UpdateRating(ctx context.Context, ratingID string, in RatingUpdateInput) (domain.Rating, error)
	DeleteRating(ctx context.Context, ratingID string) error

	CustomerByID(ctx context.Context, id string) (domain.User, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerUpdateInput) (domain.User, error)
}
