package ports

import (
	"context"

	"github.com/symmetrical-potato/web/internal/core/domain"
)

// AuthToken is the credential material returned by a successful login.
// TokenTTL is the backend-declared lifetime in seconds and drives the
// Max-Age of the bearer cookie.
type AuthToken struct {
	Token    string
	TokenTTL int
}

// RegisterInput carries the registration form values forwarded verbatim to
// the backend; the backend owns password hashing and uniqueness checks.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Locale   string
}

// AuthBackend covers session establishment and identity resolution.
type AuthBackend interface {
	// CurrentUser resolves the identity bound to the client's bearer.
	// Callers treat any error identically to "no identity".
	CurrentUser(ctx context.Context) (*domain.Identity, error)
	Login(ctx context.Context, username, password string) (*AuthToken, error)
	Register(ctx context.Context, input RegisterInput) error
	RequestPasswordReset(ctx context.Context, email string) error
}

// HeistBackend covers the public map and heist membership operations.
type HeistBackend interface {
	Place(ctx context.Context, placeID string) (*domain.Place, error)
	JoinHeist(ctx context.Context, heistID string) error
	LeaveHeist(ctx context.Context, heistID string) error
	DeleteHeist(ctx context.Context, heistID string) error
}

// Per-entity update inputs for the admin back-office. Each mirrors the
// editable fields of its entity; identifiers travel separately.

type AssetInput struct {
	Name        string
	Price       float64
	Type        string
	MaxQuantity int
	TeamAsset   bool
}

type EstablishmentInput struct {
	Name                   string
	Description            string
	MinimumWage            float64
	MinimumWorkTimePerWeek int
}

type HeistInput struct {
	Name           string
	Phase          string
	PreferedTactic string
	Difficulty     string
}

type LocationInput struct {
	Name    string
	Address string
}

type UserInput struct {
	Email  string
	Status string
}

type ContractorRequestInput struct {
	Status       string
	AdminComment string
}

// AdminBackend covers the admin CRUD surface. Every operation maps to a
// named GraphQL query or mutation; the backend enforces its own
// authorization on top of the gateway's role gate.
type AdminBackend interface {
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	GetAsset(ctx context.Context, id string) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, id string, input AssetInput) error
	DeleteAsset(ctx context.Context, id string) error

	ListEstablishments(ctx context.Context) ([]domain.Establishment, error)
	GetEstablishment(ctx context.Context, id string) (*domain.Establishment, error)
	UpdateEstablishment(ctx context.Context, id string, input EstablishmentInput) error
	DeleteEstablishment(ctx context.Context, id string) error

	ListHeists(ctx context.Context) ([]domain.Heist, error)
	GetHeist(ctx context.Context, id string) (*domain.Heist, error)
	UpdateHeist(ctx context.Context, id string, input HeistInput) error

	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetLocation(ctx context.Context, id string) (*domain.Location, error)
	UpdateLocation(ctx context.Context, id string, input LocationInput) error
	DeleteLocation(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
	GetUser(ctx context.Context, id string) (*domain.UserSummary, error)
	UpdateUser(ctx context.Context, id string, input UserInput) error
	DeleteUser(ctx context.Context, id string) error

	ListContractorRequests(ctx context.Context) ([]domain.ContractorRequest, error)
	GetContractorRequest(ctx context.Context, id string) (*domain.ContractorRequest, error)
	UpdateContractorRequest(ctx context.Context, id string, input ContractorRequestInput) error
	DeleteContractorRequest(ctx context.Context, id string) error
}

// Backend is the full remote GraphQL collaborator as seen by route handlers.
// One value is bound per request to that request's bearer (or anonymous).
type Backend interface {
	AuthBackend
	HeistBackend
	AdminBackend
}
