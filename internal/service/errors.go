package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryInUse      = errors.New("category still has expenses")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrForbidden          = errors.New("operation not permitted")
	ErrInvalidInput       = errors.New("invalid input")
)
