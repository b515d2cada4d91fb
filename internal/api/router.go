package api

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/taskgate/clickup-gateway/internal/api/handler"
	"github.com/taskgate/clickup-gateway/internal/api/middleware"
	"github.com/taskgate/clickup-gateway/internal/core/domain"
	"github.com/taskgate/clickup-gateway/internal/core/service"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/clickup"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/db/postgres"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/db/redis"
	httphandlers "github.com/taskgate/clickup-gateway/internal/infrastructure/http/handlers"
	"github.com/taskgate/clickup-gateway/internal/infrastructure/queue"
	"github.com/taskgate/clickup-gateway/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every request passes the rate limiter first, then bearer
// token verification and the role check on protected routes; usage
// logging observes the final response.
func NewRouter(ctx context.Context, pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clickup_gateway"))
	e.Use(middleware.RateLimit(redis.NewRateLimiter(rdb), log,
		middleware.RateTier{Name: "short", Window: cfg.RateLimit.ShortWindow, Limit: cfg.RateLimit.ShortLimit},
		middleware.RateTier{Name: "medium", Window: cfg.RateLimit.MediumWindow, Limit: cfg.RateLimit.MediumLimit},
		middleware.RateTier{Name: "long", Window: cfg.RateLimit.LongWindow, Limit: cfg.RateLimit.LongLimit},
	))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	apiLogRepo := postgres.NewAPILogRepository(pool)

	logWriter := queue.NewAPILogWriter(0, apiLogRepo, log)
	logWriter.Start(ctx)
	e.Use(middleware.APILog(logWriter))

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	upstream := clickup.New(clickup.Config{
		BaseURL:  cfg.ClickUp.BaseURL,
		APIToken: cfg.ClickUp.APIToken,
	}, log)

	taskHandler := handler.NewTaskHandler(service.NewTaskService(upstream))
	spaceHandler := handler.NewSpaceHandler(service.NewSpaceService(upstream))
	listHandler := handler.NewListHandler(service.NewListService(upstream))
	workspaceHandler := handler.NewWorkspaceHandler(service.NewWorkspaceService(upstream))

	auth := middleware.Auth(tokens)
	editors := middleware.RBAC(domain.RoleEditor, domain.RoleAdmin)
	admins := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	appHandler := handler.NewAppHandler()
	e.GET("/", appHandler.Info)

	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(pool, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/profile", authHandler.Profile, auth)

	// --- Tasks: reads live, writes disabled ---
	tasks := e.Group("/api/tasks", auth)
	tasks.GET("/list/:listId", taskHandler.ListByList)
	tasks.GET("/:taskId", taskHandler.GetByID)
	tasks.POST("/list/:listId", taskHandler.Create, editors)
	tasks.PUT("/:taskId", taskHandler.Update, editors)
	tasks.DELETE("/:taskId", taskHandler.Delete, admins)

	// --- Spaces: reads live, writes disabled ---
	spaces := e.Group("/api/spaces", auth)
	spaces.GET("/workspace/:workspaceId", spaceHandler.ListByWorkspace)
	spaces.GET("/:spaceId", spaceHandler.GetByID)
	spaces.POST("/workspace/:workspaceId", spaceHandler.Create, editors)
	spaces.PUT("/:spaceId", spaceHandler.Update, editors)
	spaces.DELETE("/:spaceId", spaceHandler.Delete, admins)

	// --- Lists: reads live, writes disabled ---
	lists := e.Group("/api/lists", auth)
	lists.GET("/space/:spaceId", listHandler.ListBySpace)
	lists.GET("/folder/:folderId", listHandler.ListByFolder)
	lists.GET("/:listId", listHandler.GetByID)
	lists.POST("/folder/:folderId", listHandler.CreateInFolder, editors)
	lists.POST("/space/:spaceId", listHandler.CreateInSpace, editors)
	lists.PUT("/:listId", listHandler.Update, editors)
	lists.DELETE("/:listId", listHandler.Delete, admins)

	// --- Users & workspaces: everything live ---
	users := e.Group("/api/users", auth)
	users.GET("/workspaces", workspaceHandler.Workspaces)
	users.GET("/me", workspaceHandler.CurrentUser)
	users.GET("/workspace/:workspaceId/members", workspaceHandler.Members)
	users.POST("/workspace/:workspaceId/invite", workspaceHandler.Invite, admins)
	users.DELETE("/workspace/:workspaceId/user/:userId", workspaceHandler.Remove, admins)
	users.PUT("/workspace/:workspaceId/user/:userId/role", workspaceHandler.UpdateMemberRole, admins)

	return e
}
