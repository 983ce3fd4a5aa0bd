package auth

import "context"

type AuthService interface {
	// Login verifies the credentials and issues an access/refresh token
	// pair. ErrInvalidCredentials covers both unknown email and wrong
	// password so the response does not leak which one failed.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// SSEToken issues a short-lived token for the event-stream endpoint,
	// which cannot carry an Authorization header.
	SSEToken(ctx context.Context) (string, error)
}
