package handlers

import (
	"context"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/service"
	"expense-tracker/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// ListAll godoc
// @Summary List all expenses
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Failure 403 {object} map[string]string
// @Router /api/expenses [get]
func (h *ExpenseHandler) ListAll(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	expenses, err := h.expenseService.ListAll(c.UserContext(), caller)
	if err != nil {
		return respondError(c, h.logger, "Failed to list expenses", err)
	}
	return c.JSON(expenses)
}

// ListMine godoc
// @Summary List the caller's expenses
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/expenses/my [get]
func (h *ExpenseHandler) ListMine(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	expenses, err := h.expenseService.ListMine(c.UserContext(), caller)
	if err != nil {
		return respondError(c, h.logger, "Failed to list expenses", err)
	}
	return c.JSON(expenses)
}

// Create godoc
// @Summary Create an expense
// @Description Owner defaults to the caller. Admins may set userId.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.expenseService.Create(c.UserContext(), caller, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to create expense", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body dto.ExpenseRequest true "Expense"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.logger, "Invalid id", err)
	}

	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	resp, err := h.expenseService.Update(c.UserContext(), caller, id, &req)
	if err != nil {
		return respondError(c, h.logger, "Failed to update expense", err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path int true "Expense ID"
// @Security Bearer
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.logger, "Invalid id", err)
	}

	if err := h.expenseService.Delete(c.UserContext(), caller, id); err != nil {
		return respondError(c, h.logger, "Failed to delete expense", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TotalByCategory godoc
// @Summary Totals per category across all users
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]number
// @Router /api/expenses/total-by-category [get]
func (h *ExpenseHandler) TotalByCategory(c *fiber.Ctx) error {
	return h.totals(c, h.expenseService.TotalByCategory)
}

// MonthlySummary godoc
// @Summary Totals per month across all users
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]number
// @Router /api/expenses/monthly-summary [get]
func (h *ExpenseHandler) MonthlySummary(c *fiber.Ctx) error {
	return h.totals(c, h.expenseService.MonthlySummary)
}

// MyTotalByCategory godoc
// @Summary Caller's totals per category
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]number
// @Router /api/expenses/my/total-by-category [get]
func (h *ExpenseHandler) MyTotalByCategory(c *fiber.Ctx) error {
	return h.totals(c, h.expenseService.MyTotalByCategory)
}

// MyMonthlySummary godoc
// @Summary Caller's totals per month
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]number
// @Router /api/expenses/my/monthly-summary [get]
func (h *ExpenseHandler) MyMonthlySummary(c *fiber.Ctx) error {
	return h.totals(c, h.expenseService.MyMonthlySummary)
}

func (h *ExpenseHandler) totals(c *fiber.Ctx, fn func(context.Context, auth.Caller) (map[string]decimal.Decimal, error)) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", err)
	}

	totals, err := fn(c.UserContext(), caller)
	if err != nil {
		return respondError(c, h.logger, "Failed to compute totals", err)
	}
	return c.JSON(totals)
}
