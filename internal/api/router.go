package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/salesdesk/daily-report-api/internal/api/handler"
	"github.com/salesdesk/daily-report-api/internal/api/middleware"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
	"github.com/salesdesk/daily-report-api/internal/core/service"
	healthhandlers "github.com/salesdesk/daily-report-api/internal/infrastructure/http/handlers"
	pgdb "github.com/salesdesk/daily-report-api/internal/infrastructure/db/postgres"
	redisdb "github.com/salesdesk/daily-report-api/internal/infrastructure/db/redis"
)

// routerDeps carries everything the route table needs, so tests can mount
// the real routes and middleware chain around stub services.
type routerDeps struct {
	jwtSecret string
	revoker   ports.TokenRevoker
	log       zerolog.Logger

	auth      *handler.AuthHandler
	users     *handler.UserHandler
	reports   *handler.ReportHandler
	customers *handler.CustomerHandler

	liveness  echo.HandlerFunc
	readiness echo.HandlerFunc
}

// NewRouter builds the Echo instance with all dependencies and routes wired.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	userRepo := pgdb.NewUserRepository(pool)
	reportRepo := pgdb.NewReportRepository(pool)
	customerRepo := pgdb.NewCustomerRepository(pool)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revoker, jwtSecret, sessionTTL, log)
	userService := service.NewUserService(userRepo, log)
	reportService := service.NewReportService(reportRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)

	e := newRouter(routerDeps{
		jwtSecret: jwtSecret,
		revoker:   revoker,
		log:       log,

		auth:      handler.NewAuthHandler(authService),
		users:     handler.NewUserHandler(userService),
		reports:   handler.NewReportHandler(reportService),
		customers: handler.NewCustomerHandler(customerService),

		liveness:  healthhandlers.NewHealthHandler().Liveness,
		readiness: healthhandlers.NewReadinessHandler(pool, rdb).Readiness,
	})

	// Request-level metrics only exist in the real process; tests mount
	// the route table without touching the global registry twice.
	e.Use(echoprometheus.NewMiddleware("salesreport"))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// newRouter registers middleware and the route table.
func newRouter(deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Guard(deps.jwtSecret, deps.revoker))

	auth := middleware.Auth(deps.jwtSecret, deps.revoker)
	managerOnly := middleware.RequireRole(domain.RoleManager)
	salesOnly := middleware.RequireRole(domain.RoleSales)

	// --- Auth routes ---
	e.POST("/auth/login", deps.auth.Login)
	e.POST("/auth/logout", deps.auth.Logout, auth)

	// --- Daily reports ---
	reports := e.Group("/reports", auth)
	reports.GET("", deps.reports.List)
	reports.POST("", deps.reports.Create, salesOnly)
	reports.GET("/:id", deps.reports.Get)
	reports.PUT("/:id", deps.reports.Update)
	reports.DELETE("/:id", deps.reports.Delete)

	// --- Customer master (reads: any authenticated, writes: manager) ---
	customers := e.Group("/master/customers", auth)
	customers.GET("", deps.customers.List)
	customers.GET("/:id", deps.customers.Get)
	customers.POST("", deps.customers.Create, managerOnly)
	customers.PUT("/:id", deps.customers.Update, managerOnly)
	customers.DELETE("/:id", deps.customers.Delete, managerOnly)

	// --- User master (manager only) ---
	users := e.Group("/master/users", auth, managerOnly)
	users.GET("", deps.users.List)
	users.POST("", deps.users.Create)
	users.GET("/:id", deps.users.Get)
	users.PUT("/:id", deps.users.Update)
	users.DELETE("/:id", deps.users.Delete)

	// --- Health probes (no auth required) ---
	e.GET("/health", deps.liveness)
	e.GET("/health/ready", deps.readiness)

	return e
}
