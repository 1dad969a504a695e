package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/token"
)

type authUsecase struct {
	accountRepo domain.AccountRepository
	tokens      *token.Manager
	validate    *validator.Validate
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(accountRepo domain.AccountRepository, tokens *token.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		tokens:      tokens,
		validate:    validate,
	}
}

// Register creates the account and its profile in one transaction.
func (uc *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if input.Password != input.ConfirmPassword {
		return nil, apperror.BadRequest("Passwords do not match")
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleCompany {
		return nil, apperror.BadRequest("Invalid role. Allowed roles: user, company")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	acc := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if input.CompanyName != "" {
		acc.CompanyName = &input.CompanyName
	}

	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Username or email already registered")
		}
		return nil, apperror.Internal(err)
	}
	return acc, nil
}

func (uc *authUsecase) Login(ctx context.Context, username, password string) (*domain.Account, *domain.TokenPair, error) {
	acc, err := uc.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		// Same response for unknown user and wrong password
		return nil, nil, apperror.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid credentials")
	}

	pair, err := uc.tokens.GeneratePair(acc)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return acc, pair, nil
}

// Refresh issues a new access token from a valid refresh token. Role is
// re-read from the store so a stale claim cannot outlive a role change.
func (uc *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", apperror.Unauthorized("Invalid refresh token")
	}

	acc, err := uc.accountRepo.GetByID(ctx, claims.AccountID())
	if err != nil {
		return "", apperror.Unauthorized("Invalid refresh token")
	}

	access, err := uc.tokens.GenerateAccess(acc)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return access, nil
}

func (uc *authUsecase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	acc, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return acc, nil
}

// SearchUsers returns an empty result for queries shorter than two
// characters; otherwise a case-insensitive substring match on username or
// email, excluding the requester, capped at 20.
func (uc *authUsecase) SearchUsers(ctx context.Context, requesterID int64, query string) ([]domain.UserSummary, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []domain.UserSummary{}, nil
	}

	results, err := uc.accountRepo.Search(ctx, query, requesterID, 20)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return results, nil
}
