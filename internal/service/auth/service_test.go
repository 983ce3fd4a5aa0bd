package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/auth"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/user"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testPassword   = "password123"
)

type fakeUserRepo struct {
	users []user.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.users = append(r.users, u)
	return u, nil
}

func newTestAuthService(t *testing.T, users ...user.User) (auth.AuthService, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(&fakeUserRepo{users: users}, jwtService), jwtService
}

func activeUser() user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	return user.User{
		ID:           "user-1",
		CompanyID:    "co-1",
		Email:        "dana@acme.test",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		IsActive:     true,
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t, activeUser())

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@acme.test",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "admin", resp.User.Role)
	assert.Equal(t, "co-1", resp.User.CompanyID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t, activeUser())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@acme.test",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@acme.test",
		Password: testPassword,
	})
	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	u := activeUser()
	u.IsActive = false
	svc, _ := newTestAuthService(t, u)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dana@acme.test",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _ := newTestAuthService(t, activeUser())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "dana@acme.test", Password: testPassword})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// Each refresh token works once.
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestAuthService(t, activeUser())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "dana@acme.test", Password: testPassword})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService(t, activeUser())
	ctx := context.Background()

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "dana@acme.test", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestSSEToken(t *testing.T) {
	svc, jwtService := newTestAuthService(t, activeUser())

	ja := jwtauth.New("HS256", []byte(testSecret), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": "user-1", "company_id": "co-1"})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	sseToken, err := svc.SSEToken(ctx)
	require.NoError(t, err)

	userID, err := jwtService.ValidateSSEToken(sseToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}
