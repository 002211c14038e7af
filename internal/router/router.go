package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/skill-swap/internal/config"
	"github.com/iliyamo/skill-swap/internal/handler"
	"github.com/iliyamo/skill-swap/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication: the
// health check and the public skill catalog.
func RegisterRoutes(e *echo.Echo, s *handler.SkillsHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/skills", s.Catalog)
}

// RegisterAuth registers registration and login under /v1/auth. These
// endpoints create or verify the current user and hand out access
// tokens; they carry no JWT middleware themselves.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers every protected endpoint under /v1. The JWT
// middleware runs first, then the Redis token bucket; calendar reads
// additionally go through the response cache. All mutating endpoints
// return the updated collection so clients re-render without a second
// round trip.
func RegisterAPI(
	e *echo.Echo,
	cfg config.Config,
	a *handler.AuthHandler,
	s *handler.SkillsHandler,
	r *handler.RequestsHandler,
	se *handler.SessionsHandler,
	cal *handler.CalendarHandler,
	rdb *redis.Client,
) {
	api := e.Group("/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	api.GET("/me", a.Me)
	api.POST("/me/skills", s.Add)
	api.DELETE("/me/skills/:id", s.Remove)

	api.GET("/requests", r.List)
	api.POST("/requests", r.Create)
	api.POST("/requests/:id/accept", r.Accept)
	api.POST("/requests/:id/reject", r.Reject)

	api.GET("/sessions", se.List)
	api.POST("/sessions/:id/complete", se.Complete)
	api.POST("/sessions/:id/cancel", se.Cancel)

	calGroup := api.Group("/calendar")
	calGroup.Use(middleware.Cache(config.LoadCacheConfig(), rdb))
	calGroup.GET("/day", cal.Day)
	calGroup.GET("/:year/:month", cal.Month)
}
