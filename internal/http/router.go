package http

import (
	"log/slog"

	"github.com/geocoder89/staffportal/internal/config"
	"github.com/geocoder89/staffportal/internal/http/handlers"
	"github.com/geocoder89/staffportal/internal/http/middlewares"
	"github.com/geocoder89/staffportal/internal/observability"
	"github.com/geocoder89/staffportal/internal/repo/memory"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter wires the middleware chain and every route over store. prom and
// gatherer may be nil, in which case metrics are neither recorded nor served.
func NewRouter(log *slog.Logger, cfg config.Config, store *memory.Store, prom *observability.Prom, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	r.NoRoute(func(ctx *gin.Context) {
		handlers.RespondNotFound(ctx, "Not found")
	})

	// health
	h := handlers.NewHealthHandler(store.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	authHandler := handlers.NewAuthHandler(store.Users)
	usersHandler := handlers.NewUsersHandler(store.Users)
	announcementsHandler := handlers.NewAnnouncementsHandler(store.Announcements)

	requireJSON := middlewares.RequireJSON()

	api := r.Group("/api")

	api.POST("/login", requireJSON, authHandler.Login)

	api.GET("/users", usersHandler.ListUsers)
	api.POST("/users", requireJSON, usersHandler.CreateUser)
	api.GET("/users/:email", usersHandler.GetUser)
	api.PUT("/users/:email", requireJSON, usersHandler.UpdateUser)
	api.DELETE("/users/:email", usersHandler.DeleteUser)
	api.PUT("/users/:email/lock", usersHandler.ToggleLock)

	api.GET("/assets", usersHandler.ListAssets)

	api.POST("/announcements", requireJSON, announcementsHandler.Publish)
	api.GET("/announcements", announcementsHandler.List)

	return r
}
