package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh rotates the refresh token: the presented token is invalidated
	// and a new pair is issued.
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)

	// Logout clears the stored refresh token so no further refreshes succeed.
	Logout(ctx context.Context, employeeID string) error
}
