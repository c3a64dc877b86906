package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repository"
	"expense-tracker/pkg/auth"

	"go.uber.org/zap"
)

// UserService manages accounts on behalf of administrators and lets every
// user maintain their own profile.
type UserService struct {
	userRepo UserStore
	logger   *zap.Logger
}

func NewUserService(userRepo UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := sanitizeText(req.Name)
	if name == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:      name,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := sanitizeText(req.Name); name != "" {
		user.Name = name
	}
	if req.Role != "" {
		role, err := auth.ParseRole(req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		user.Role = role
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// Me returns the caller's own account as stored, not as claimed by the token.
func (s *UserService) Me(ctx context.Context, caller auth.Caller) (*dto.UserResponse, error) {
	user, err := s.get(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateMe renames the caller. The role cannot be changed this way.
func (s *UserService) UpdateMe(ctx context.Context, caller auth.Caller, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.Update(ctx, caller.ID, &dto.UpdateUserRequest{Name: req.Name})
}

func (s *UserService) ChangePassword(ctx context.Context, caller auth.Caller, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, caller.ID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to change password: %w", err)
	}
	s.logger.Info("Password changed", zap.Int64("user_id", caller.ID))
	return nil
}

func (s *UserService) get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, user *models.User) error {
	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrConflict):
			return ErrUserExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
