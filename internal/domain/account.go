package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors. Repositories translate driver errors into these so
// usecases never depend on pgx directly.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// Account roles
const (
	RoleUser    = "user"
	RoleCompany = "company"
)

type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyName  *string   `json:"company_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the compact account representation embedded in jobs,
// connections, messages and search results. Profile fields are filled only
// where the serialization includes them.
type UserSummary struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Role           string  `json:"role,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Description    *string `json:"description,omitempty"`
	Currently      *string `json:"currently,omitempty"`
	Experience     *string `json:"experience,omitempty"`
}

type AccountRepository interface {
	// Create inserts the account and its empty profile in one transaction.
	// Both rows exist afterwards or neither does.
	Create(ctx context.Context, acc *Account) error
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	// Search matches username or email case-insensitively, excluding
	// excludeID, capped at limit. Results include profile picture and
	// description when a profile row exists.
	Search(ctx context.Context, query string, excludeID int64, limit int) ([]UserSummary, error)
}

type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type RegisterInput struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role"`
	CompanyName     string `json:"company_name"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*Account, error)
	Login(ctx context.Context, username, password string) (*Account, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetAccount(ctx context.Context, id int64) (*Account, error)
	// SearchUsers returns an empty slice for queries shorter than two
	// characters after trimming. requesterID 0 means unauthenticated.
	SearchUsers(ctx context.Context, requesterID int64, query string) ([]UserSummary, error)
}
