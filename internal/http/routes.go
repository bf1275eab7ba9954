package http

import (
	"github.com/labstack/echo/v4"

	middleware "taskforce.app/taskforce/internal/http/middlewares"
	"taskforce.app/taskforce/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, limiter ratelimit.Limiter, jwtSecret string) {
	e.Use(middleware.RateLimiter(limiter))

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	api := e.Group("", middleware.JWTAuth(jwtSecret))

	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.GET("/tasks/:id/action", h.GetAction)

	api.POST("/tasks/:id/responds", h.CreateRespond)
	api.POST("/tasks/:id/responds/:respond_id/admit", h.AdmitRespond)
	api.POST("/tasks/:id/responds/:respond_id/refuse", h.RefuseRespond)

	api.POST("/tasks/:id/refuse", h.RefuseTask)
	api.POST("/tasks/:id/cancel", h.CancelTask)
	api.POST("/tasks/:id/complete", h.CompleteTask)

	api.GET("/users/:id", h.GetProfile)
}
