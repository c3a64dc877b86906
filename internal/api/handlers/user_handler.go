package handlers

import (
	"expense-tracker/internal/dto"
	"expense-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, "Failed to list users", err)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Security Bearer
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary Update a user's name or role
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "User"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.logger, "Invalid id", err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to update user", err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a user and their expenses
// @Tags users
// @Param id path int true "User ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.logger, "Invalid id", err)
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, "Failed to delete user", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Router /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	resp, err := h.userService.Me(c.UserContext(), caller)
	if err != nil {
		return respondError(c, h.logger, "Failed to load profile", err)
	}
	return c.JSON(resp)
}

// UpdateMe godoc
// @Summary Rename the current user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Router /api/users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.userService.UpdateMe(c.UserContext(), caller, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to update profile", err)
	}
	return c.JSON(resp)
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags users
// @Accept json
// @Param request body dto.ChangePasswordRequest true "New password"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/users/me/password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := h.userService.ChangePassword(c.UserContext(), caller, req.Password); err != nil {
		return respondError(c, h.logger, "Failed to change password", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
