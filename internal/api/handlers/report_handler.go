package handlers

import (
	"strconv"

	"expense-tracker/internal/report"
	"expense-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// MonthlyReport godoc
// @Summary Monthly spending report
// @Description Totals, category and daily breakdowns and top expenses for one calendar month.
// @Description yearMonth defaults to the current UTC month. userId of another user requires ADMIN.
// @Tags reports
// @Produce json
// @Param yearMonth query string false "Month as YYYY-MM"
// @Param userId query int false "Target user id"
// @Security Bearer
// @Success 200 {object} report.Report
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/reports/monthly [get]
func (h *ReportHandler) MonthlyReport(c *fiber.Ctx) error {
	caller, err := getCaller(c)
	if err != nil {
		return respondError(c, h.logger, "Unauthorized", report.ErrUnauthenticated)
	}

	req := report.Request{YearMonth: c.Query("yearMonth")}
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "userId must be an integer",
			})
		}
		req.UserID = &id
	}

	rep, err := h.reportService.GenerateMonthlyReport(c.UserContext(), caller, req)
	if err != nil {
		return respondError(c, h.logger, "Report generation failed", err)
	}

	return c.JSON(rep)
}

// AvailableUsers godoc
// @Summary Users a report can be generated for
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} map[string]string
// @Router /api/reports/users [get]
func (h *ReportHandler) AvailableUsers(c *fiber.Ctx) error {
	users, err := h.reportService.AvailableUsers(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, "Failed to list users", err)
	}
	return c.JSON(users)
}
