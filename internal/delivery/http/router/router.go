// Package router contains routing setup for the HTTP delivery.
package router

import (
	"workforce/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	WorkerHandler  *handler.WorkerHandler
	OrderHandler   *handler.OrderHandler
	MessageHandler *handler.MessageHandler
	StatsHandler   *handler.StatsHandler
	SiteHandler    *handler.SiteHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	user    *handler.UserHandler
	worker  *handler.WorkerHandler
	order   *handler.OrderHandler
	message *handler.MessageHandler
	stats   *handler.StatsHandler
	site    *handler.SiteHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		user:    params.UserHandler,
		worker:  params.WorkerHandler,
		order:   params.OrderHandler,
		message: params.MessageHandler,
		stats:   params.StatsHandler,
		site:    params.SiteHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.site.Home)
	e.GET("/health", r.site.Health)

	api := e.Group("/api")
	{
		api.POST("/user", r.user.CreateOrUpdate)
		api.GET("/user/:id", r.user.Get)

		api.POST("/apply-worker", r.worker.Apply)
		api.GET("/workers", r.worker.List)
		api.POST("/approve-worker/:id", r.worker.Approve)
		api.DELETE("/reject-worker/:id", r.worker.Reject)
		api.POST("/make-admin/:id", r.worker.MakeAdmin)
		api.POST("/remove-admin/:id", r.worker.RemoveAdmin)
		api.DELETE("/delete-worker/:id", r.worker.Delete)

		api.POST("/order", r.order.Create)
		api.GET("/orders", r.order.List)
		api.POST("/assign-order/:id", r.order.Assign)
		api.POST("/process-order/:id", r.order.Process)
		api.POST("/deliver-order/:id", r.order.Deliver)
		api.POST("/order-comment/:id", r.order.Comment)

		api.POST("/send-message", r.message.Send)
		api.GET("/conversation/:id1/:id2", r.message.Conversation)

		api.GET("/statistics", r.stats.Statistics)
		api.GET("/states", r.stats.States)
	}
}
