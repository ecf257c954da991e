package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/misranrifat/book-store/internal/api/handler"
	"github.com/misranrifat/book-store/internal/api/middleware"
	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
	"github.com/misranrifat/book-store/internal/core/service"
	"github.com/misranrifat/book-store/internal/infrastructure/http/handlers"
)

// Deps carries the persistence and readiness dependencies the router wires up.
type Deps struct {
	Users     ports.UserRepository
	Authors   ports.AuthorRepository
	Books     ports.BookRepository
	Readiness []handlers.ReadinessCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route→role table lives here and nowhere else: open reads carry no
// middleware, mutations go through Auth then RBAC(ADMIN).
func NewRouter(deps Deps, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, jwtSecret, tokenTTL, log)
	authorService := service.NewAuthorService(deps.Authors, deps.Books, log)
	bookService := service.NewBookService(deps.Books, deps.Authors, log)
	userService := service.NewUserService(deps.Users, log)

	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(jwtSecret, deps.Users)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (open) ---
	auth := e.Group("/api/auth")
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signout", authHandler.Signout)

	// --- Authors: open reads, ADMIN mutations ---
	authors := e.Group("/api/authors")
	authors.GET("", authorHandler.GetAll)
	authors.GET("/:id", authorHandler.Get)
	authors.POST("", authorHandler.Create, authn, adminOnly)
	authors.PUT("/:id", authorHandler.Update, authn, adminOnly)
	authors.DELETE("/:id", authorHandler.Delete, authn, adminOnly)
	authors.DELETE("", authorHandler.DeleteAll, authn, adminOnly)

	// --- Books: open reads, ADMIN mutations ---
	books := e.Group("/api/books")
	books.GET("", bookHandler.GetAll)
	books.GET("/:id", bookHandler.Get)
	books.GET("/author/:id", bookHandler.GetByAuthor)
	books.POST("", bookHandler.Create, authn, adminOnly)
	books.PUT("/:id", bookHandler.Update, authn, adminOnly)
	books.DELETE("/:id", bookHandler.Delete, authn, adminOnly)
	books.DELETE("", bookHandler.DeleteAll, authn, adminOnly)

	// --- Users: ADMIN everything ---
	users := e.Group("/api/users", authn, adminOnly)
	users.GET("", userHandler.GetAll)
	users.GET("/:id", userHandler.Get)
	users.DELETE("/:id", userHandler.Delete)
	users.DELETE("", userHandler.DeleteAll)

	// --- Ops endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
