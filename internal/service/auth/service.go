package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffline/backoffice-go/internal/domain/auth"
	"github.com/staffline/backoffice-go/internal/domain/employee"
	"github.com/staffline/backoffice-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employees employee.EmployeeRepository
	tokens    jwt.Service
}

func NewService(employees employee.EmployeeRepository, tokens jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		employees: employees,
		tokens:    tokens,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	e, err := s.employees.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if e == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	roleName := ""
	if e.RoleName != nil {
		roleName = *e.RoleName
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(e.ID, roleName, e.Permissions)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.tokens.GenerateRefreshToken(e.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.employees.SetRefreshToken(ctx, e.ID, &refreshToken); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Employee: auth.EmployeeInfo{
			ID:          e.ID,
			Email:       e.Email,
			Name:        e.Name,
			Role:        roleName,
			Permissions: e.Permissions,
		},
	}, nil
}

// Refresh implements auth.Service. The presented token must match the stored
// one; the stored token is rotated on every refresh.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RefreshResponse{}, err
	}

	employeeID, err := s.tokens.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	e, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	if e.RefreshToken == nil || *e.RefreshToken != req.RefreshToken {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	roleName := ""
	if e.RoleName != nil {
		roleName = *e.RoleName
	}

	accessToken, expiresAt, err := s.tokens.GenerateAccessToken(e.ID, roleName, e.Permissions)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.tokens.GenerateRefreshToken(e.ID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.employees.SetRefreshToken(ctx, e.ID, &refreshToken); err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, employeeID string) error {
	if err := s.employees.SetRefreshToken(ctx, employeeID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
