package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repository"
	"expense-tracker/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(users *mockUserStore) (*AuthService, *auth.JWTManager) {
	jwt := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwt, zap.NewNop()), jwt
}

func TestAuthService_RegisterDefaultsRole(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByName", mock.Anything, "carol").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == auth.RoleUser && u.Password != "secret"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = 3
	}).Return(nil).Once()

	svc, jwt := newAuthService(users)
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{Name: "carol", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "USER", resp.Role)
	assert.Equal(t, int64(3), resp.User.ID)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "carol", claims.Username)
	users.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByName", mock.Anything, "carol").Return(&models.User{ID: 3, Name: "carol"}, nil)

	svc, _ := newAuthService(users)
	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Name: "carol", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Identify(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByID", mock.Anything, int64(2)).Return(&models.User{ID: 2, Name: "alicia", Role: auth.RoleUser}, nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, repository.ErrNotFound)
	users.On("GetByID", mock.Anything, int64(5)).Return(nil, errors.New("pool closed"))

	svc, _ := newAuthService(users)

	caller, err := svc.Identify(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, auth.Caller{ID: 2, Username: "alicia", Role: auth.RoleUser}, caller)

	_, err = svc.Identify(context.Background(), 9)
	assert.ErrorIs(t, err, auth.ErrUnknownCaller)

	_, err = svc.Identify(context.Background(), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUnknownCaller)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)

	users := new(mockUserStore)
	users.On("GetByName", mock.Anything, "admin").Return(&models.User{ID: 1, Name: "admin", Password: hash, Role: auth.RoleAdmin}, nil)
	users.On("GetByName", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc, _ := newAuthService(users)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Role)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Name: "admin", Role: auth.RoleAdmin}, nil)

	svc, jwt := newAuthService(users)
	refresh, err := jwt.GenerateRefreshToken(1)
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	access, err := jwt.GenerateToken(1, "admin", auth.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.RefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_ChangePassword(t *testing.T) {
	users := new(mockUserStore)
	users.On("UpdatePassword", mock.Anything, alice.ID, mock.MatchedBy(func(hash string) bool {
		return auth.CheckPasswordHash("n3w", hash)
	})).Return(nil).Once()

	svc := NewUserService(users, zap.NewNop())
	require.NoError(t, svc.ChangePassword(context.Background(), alice, "n3w"))
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), alice, ""), ErrInvalidInput)
	users.AssertExpectations(t)
}

func TestUserService_UpdateMeKeepsRole(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByID", mock.Anything, alice.ID).Return(&models.User{ID: alice.ID, Name: "alice", Role: auth.RoleUser}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "alicia" && u.Role == auth.RoleUser
	})).Return(nil).Once()

	svc := NewUserService(users, zap.NewNop())
	resp, err := svc.UpdateMe(context.Background(), alice, &dto.UpdateProfileRequest{Name: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", resp.Name)
	users.AssertExpectations(t)
}

func TestCategoryService_DeleteInUse(t *testing.T) {
	categories := new(mockCategoryStore)
	categories.On("Delete", mock.Anything, int64(4)).Return(repository.ErrReference)

	svc := NewCategoryService(categories, zap.NewNop())
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrCategoryInUse)
}
