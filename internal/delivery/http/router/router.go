// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quizmap/internal/delivery/http/middleware"
	"quizmap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DedupHandler   *handler.DedupHandler
	ScanHandler    *handler.ScanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dedupHandler   *handler.DedupHandler
	scanHandler    *handler.ScanHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dedupHandler:   params.DedupHandler,
		scanHandler:    params.ScanHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Duplicate review routes require authentication and the "admin" role.
	dedupGroup := e.Group("/admin/dedup")
	dedupGroup.Use(r.authMiddleware.Authenticate)
	dedupGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		dedupGroup.GET("/candidates", r.dedupHandler.ListCandidates)
		dedupGroup.GET("/candidates/count", r.dedupHandler.CountCandidates)
		dedupGroup.GET("/statistics", r.dedupHandler.Statistics)
		dedupGroup.GET("/exact-matches", r.dedupHandler.ExactMatches)
		dedupGroup.GET("/compare/:venue1_id/:venue2_id", r.dedupHandler.Compare)

		dedupGroup.POST("/merge", r.dedupHandler.Merge)
		dedupGroup.POST("/reject", r.dedupHandler.Reject)
		dedupGroup.POST("/batch/merge", r.dedupHandler.BatchMerge)
		dedupGroup.POST("/batch/reject", r.dedupHandler.BatchReject)

		dedupGroup.POST("/scan", r.scanHandler.TriggerScan)
		dedupGroup.GET("/scans/:id", r.scanHandler.GetScanRun)
	}
}
