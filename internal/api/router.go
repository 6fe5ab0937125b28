package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/job-portal/internal/api/handler"
	"github.com/jobportal/job-portal/internal/api/middleware"
	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
	"github.com/jobportal/job-portal/internal/core/service"
	mongorepo "github.com/jobportal/job-portal/internal/infrastructure/db/mongo"
	redisinfra "github.com/jobportal/job-portal/internal/infrastructure/db/redis"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret      string
	TokenTTL       time.Duration
	MinPasswordLen int
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, documents ports.DocumentStore, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobportal"))

	// --- Repositories ---
	identityRepo := mongorepo.NewIdentityRepository(db)
	companyRepo := mongorepo.NewCompanyRepository(db)
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	applicationRepo := mongorepo.NewApplicationRepository(db)
	blogRepo := mongorepo.NewBlogRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)

	// --- Services ---
	authService := service.NewAuthService(identityRepo, companyRepo, employeeRepo,
		opts.JWTSecret, opts.TokenTTL, opts.MinPasswordLen, opts.Logger)
	companyService := service.NewCompanyService(companyRepo, jobRepo, opts.Logger)
	employeeService := service.NewEmployeeService(employeeRepo)
	applicationService := service.NewApplicationService(employeeRepo, jobRepo, applicationRepo,
		documents, redisinfra.NewApplicationGuard(rdb), opts.Logger)
	blogService := service.NewBlogService(blogRepo, companyRepo, employeeRepo)
	reviewService := service.NewReviewService(reviewRepo, companyRepo, employeeRepo)

	// --- Handlers ---
	companyHandler := handler.NewCompanyHandler(authService, companyService)
	employeeHandler := handler.NewEmployeeHandler(authService, employeeService, applicationService)
	blogHandler := handler.NewBlogHandler(blogService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	auth := middleware.Auth(opts.JWTSecret)
	companyOnly := middleware.RBAC(domain.RoleCompany)
	employeeOnly := middleware.RBAC(domain.RoleEmployee)

	// --- Company routes ---
	e.POST("/companies/register", companyHandler.Register)
	e.POST("/companies/login", companyHandler.Login)
	e.GET("/companies", companyHandler.List)
	e.GET("/companies/industry/:industry", companyHandler.ListByIndustry)
	e.GET("/companies/:companyId", companyHandler.Get)
	e.POST("/companies/:companyId/jobs", companyHandler.PostJob, auth, companyOnly)
	e.GET("/companies/:companyId/jobs", companyHandler.ListJobs)

	// --- Employee routes ---
	e.POST("/employees/register", employeeHandler.Register)
	e.POST("/employees/login", employeeHandler.Login)
	e.GET("/employees/search", employeeHandler.Search)
	e.POST("/employees/:employeeId/apply/:jobId", employeeHandler.Apply, auth, employeeOnly)
	e.GET("/employees/:employeeId/applications", employeeHandler.Applications, auth, employeeOnly)

	// --- Blog routes ---
	e.POST("/companies/:companyId/blogs", blogHandler.CreateForCompany, auth, companyOnly)
	e.GET("/companies/:companyId/blogs", blogHandler.ListForCompany)
	e.POST("/employees/:employeeId/blogs", blogHandler.CreateForEmployee, auth, employeeOnly)
	e.GET("/employees/:employeeId/blogs", blogHandler.ListForEmployee)

	// --- Review routes ---
	e.POST("/reviews", reviewHandler.Create, auth, employeeOnly)
	e.GET("/companies/:companyId/reviews", reviewHandler.ListForCompany)
	e.GET("/employees/:employeeId/reviews", reviewHandler.ListForEmployee)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
