// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"scoop/config"
	"scoop/internal/delivery/api/middleware"
	"scoop/internal/delivery/api/router/handler"
	"scoop/internal/domain/policy"
	"scoop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// catalogRoutes is implemented by every catalog handler.
type catalogRoutes interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	DeleteMany(c echo.Context) error
	UploadPhoto(c echo.Context) error
}

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	CreamHandler        *handler.CreamHandler
	ToppingHandler      *handler.ToppingHandler
	ProductHandler      *handler.ProductHandler
	UserHandler         *handler.UserHandler
	AdminHandler        *handler.AdminHandler
	ClientHandler       *handler.ClientHandler
	MemberHandler       *handler.MemberHandler
	AddressHandler      *handler.AddressHandler
	RoleHandler         *handler.RoleHandler
	ServiceOrderHandler *handler.ServiceOrderHandler
	PhotoHandler        *handler.PhotoHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	creamHandler        *handler.CreamHandler
	toppingHandler      *handler.ToppingHandler
	productHandler      *handler.ProductHandler
	userHandler         *handler.UserHandler
	adminHandler        *handler.AdminHandler
	clientHandler       *handler.ClientHandler
	memberHandler       *handler.MemberHandler
	addressHandler      *handler.AddressHandler
	roleHandler         *handler.RoleHandler
	serviceOrderHandler *handler.ServiceOrderHandler
	photoHandler        *handler.PhotoHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		creamHandler:        params.CreamHandler,
		toppingHandler:      params.ToppingHandler,
		productHandler:      params.ProductHandler,
		userHandler:         params.UserHandler,
		adminHandler:        params.AdminHandler,
		clientHandler:       params.ClientHandler,
		memberHandler:       params.MemberHandler,
		addressHandler:      params.AddressHandler,
		roleHandler:         params.RoleHandler,
		serviceOrderHandler: params.ServiceOrderHandler,
		photoHandler:        params.PhotoHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.POST("/signin", r.sessionHandler.SignIn, r.signinLimiter()...)
	apiV1.POST("/refresh-token", r.sessionHandler.RefreshToken)
	apiV1.GET("/photos/*", r.photoHandler.Get)

	auth := r.authMiddleware
	can := auth.RequireAction

	resources := apiV1.Group("/resources")
	resources.Use(auth.Authenticate)

	registerCatalog(resources.Group("/creams"), r.creamHandler, can)
	registerCatalog(resources.Group("/toppings"), r.toppingHandler, can)
	registerCatalog(resources.Group("/products"), r.productHandler, can)

	users := resources.Group("/users")
	{
		users.GET("", r.userHandler.List, can(policy.UserList))
		users.DELETE("/deleteMany", r.userHandler.DeleteMany, can(policy.UserDeleteMany))
		users.GET("/:id", r.userHandler.Get, can(policy.UserRead))
		users.PUT("/:id", r.userHandler.Update, can(policy.UserUpdate))
		users.DELETE("/:id", r.userHandler.Delete, can(policy.UserDelete))
	}

	admins := users.Group("/admins", can(policy.AdminManage))
	{
		admins.POST("", r.adminHandler.Create)
		admins.GET("", r.adminHandler.List)
		admins.GET("/:id", r.adminHandler.Get)
		admins.DELETE("/:id", r.adminHandler.Delete)
	}

	clients := users.Group("/clients")
	{
		clients.POST("", r.clientHandler.Create, can(policy.ClientCreate))
		clients.GET("", r.clientHandler.List, can(policy.ClientList))
		clients.DELETE("/deleteMany", r.clientHandler.DeleteMany, can(policy.ClientDeleteMany))
		clients.PUT("/swap/:id", r.clientHandler.Swap, can(policy.ClientSwap))
		clients.GET("/:id", r.clientHandler.Get, can(policy.ClientRead))
		clients.PUT("/:id", r.clientHandler.Update, can(policy.ClientUpdate))
		clients.DELETE("/:id", r.clientHandler.Delete, can(policy.ClientDelete))
		clients.PUT("/:id/change-address", r.clientHandler.ChangeAddress, can(policy.ClientChangeAddress))
	}

	members := users.Group("/members")
	{
		members.POST("", r.memberHandler.Create, can(policy.MemberCreate))
		members.GET("", r.memberHandler.List, can(policy.MemberList))
		members.DELETE("/deleteMany", r.memberHandler.DeleteMany, can(policy.MemberDeleteMany))
		members.GET("/:id", r.memberHandler.Get, can(policy.MemberRead))
		members.PUT("/:id", r.memberHandler.Update, can(policy.MemberUpdate))
		members.DELETE("/:id", r.memberHandler.Delete, can(policy.MemberDelete))
	}

	addresses := resources.Group("/addresses", can(policy.AddressManage))
	{
		addresses.POST("", r.addressHandler.Create)
		addresses.GET("", r.addressHandler.List)
		addresses.GET("/:id", r.addressHandler.Get)
		addresses.PUT("/:id", r.addressHandler.Update)
		addresses.DELETE("/:id", r.addressHandler.Delete)
	}

	roles := resources.Group("/roles", can(policy.RoleManage))
	{
		roles.GET("", r.roleHandler.List)
		roles.POST("", r.roleHandler.Ensure)
	}

	apiV1.POST("/service-orders", r.serviceOrderHandler.Place, auth.Authenticate, can(policy.OrderPlace))
}

func registerCatalog(g *echo.Group, h catalogRoutes, can func(policy.Action) echo.MiddlewareFunc) {
	g.GET("", h.List, can(policy.CatalogRead))
	g.GET("/:id", h.Get, can(policy.CatalogRead))
	g.POST("", h.Create, can(policy.CatalogWrite))
	g.PUT("/:id", h.Update, can(policy.CatalogWrite))
	g.DELETE("/deleteMany", h.DeleteMany, can(policy.CatalogWrite))
	g.DELETE("/:id", h.Delete, can(policy.CatalogWrite))
	g.POST("/:id/photo", h.UploadPhoto, can(policy.CatalogWrite))
}

// signinLimiter throttles sign-in attempts per client IP. A non-positive
// rate disables it.
func (r *router) signinLimiter() []echo.MiddlewareFunc {
	limit := r.config.HTTP.SigninRateLimit
	if limit <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     max(1, int(limit*2)),
		ExpiresIn: 3 * time.Minute,
	})

	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}
