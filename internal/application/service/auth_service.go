package service

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/fogonlabs/comanda/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles waiter sign-in by name and PIN
type AuthService struct {
	waiterRepo repository.WaiterRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(waiterRepo repository.WaiterRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{waiterRepo: waiterRepo, jwtManager: jwtManager}
}

// LoginInput represents the login input
type LoginInput struct {
	Name string
	PIN  string
}

// LoginResult carries the signed tokens and the waiter they belong to
type LoginResult struct {
	Waiter       *entity.Waiter
	AccessToken  string
	RefreshToken string
}

// Login authenticates a waiter by name and PIN. Wrong name and wrong PIN
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	waiter, err := s.waiterRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if waiter == nil || !waiter.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(waiter.PINHash), []byte(input.PIN)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(waiter.ID, waiter.Name, string(waiter.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(waiter.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Waiter:       waiter,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	waiterID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	waiter, err := s.waiterRepo.GetByID(ctx, waiterID)
	if err != nil {
		return nil, err
	}
	if waiter == nil || !waiter.Active {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(waiter.ID, waiter.Name, string(waiter.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Waiter:       waiter,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ChangePIN sets a new PIN for a waiter after verifying the current one
func (s *AuthService) ChangePIN(ctx context.Context, waiterID uuid.UUID, currentPIN, newPIN string) error {
	if len(newPIN) < 4 {
		return apperror.NewUnprocessableError("PIN must be at least 4 digits")
	}

	waiter, err := s.waiterRepo.GetByID(ctx, waiterID)
	if err != nil {
		return err
	}
	if waiter == nil {
		return apperror.NewNotFoundError("Waiter")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(waiter.PINHash), []byte(currentPIN)); err != nil {
		return apperror.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	waiter.PINHash = string(hash)
	return s.waiterRepo.Update(ctx, waiter)
}
