package api

import (
	"github.com/gin-gonic/gin"

	"github.com/thanhnp/txsigner/internal/api/handlers"
	"github.com/thanhnp/txsigner/internal/api/middleware"
)

// Router wraps the Gin router with the signing handlers
type Router struct {
	engine      *gin.Engine
	signHandler *handlers.SignHandler
}

// NewRouter creates a new Router serving the batch signing API
func NewRouter(signer handlers.BatchSigner) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:      gin.New(),
		signHandler: handlers.NewSignHandler(signer),
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// setupMiddleware configures middleware
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.CORS())
}

// setupRoutes configures API routes
func (r *Router) setupRoutes() {
	// Health check
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.POST("/sign", r.signHandler.Sign)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
