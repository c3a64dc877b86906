package api

import (
	"errors"

	"expense-tracker/docs"
	"expense-tracker/internal/api/handlers"
	"expense-tracker/pkg/auth"
	"expense-tracker/pkg/config"
	"expense-tracker/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Category *handlers.CategoryHandler
	Expense  *handlers.ExpenseHandler
	Report   *handlers.ReportHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, identify middleware.IdentityFunc, serverCfg config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "expense-tracker",
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Public
	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	protected := api.Group("", middleware.AuthMiddleware(jwtManager, identify, appLogger))
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	users := protected.Group("/users")
	users.Get("/me", h.User.Me)
	users.Put("/me", h.User.UpdateMe)
	users.Post("/me/password", h.User.ChangePassword)
	users.Get("", adminOnly, h.User.List)
	users.Post("", adminOnly, h.User.Create)
	users.Put("/:id", adminOnly, h.User.Update)
	users.Delete("/:id", adminOnly, h.User.Delete)

	categories := protected.Group("/categories")
	categories.Get("", h.Category.List)
	categories.Post("", h.Category.Create)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	expenses := protected.Group("/expenses")
	expenses.Get("", h.Expense.ListAll)
	expenses.Get("/my", h.Expense.ListMine)
	expenses.Get("/my/total-by-category", h.Expense.MyTotalByCategory)
	expenses.Get("/my/monthly-summary", h.Expense.MyMonthlySummary)
	expenses.Get("/total-by-category", h.Expense.TotalByCategory)
	expenses.Get("/monthly-summary", h.Expense.MonthlySummary)
	expenses.Post("", h.Expense.Create)
	expenses.Put("/:id", h.Expense.Update)
	expenses.Delete("/:id", h.Expense.Delete)

	reports := protected.Group("/reports")
	reports.Get("/monthly", h.Report.MonthlyReport)
	reports.Get("/users", adminOnly, h.Report.AvailableUsers)

	return app
}
