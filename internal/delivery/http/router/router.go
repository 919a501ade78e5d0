// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"yasen/internal/delivery/http/middleware"
	"yasen/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProjectHandler      *handler.ProjectHandler
	MeasurementHandler  *handler.MeasurementHandler
	PhotoHandler        *handler.PhotoHandler
	CatalogHandler      *handler.CatalogHandler
	NotificationHandler *handler.NotificationHandler
	AdminHandler        *handler.AdminHandler
	AssistantHandler    *handler.AssistantHandler
	AgentHandler        *handler.AgentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AdminMiddleware     *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Phone verification routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/send-code", r.params.AuthHandler.SendCode)
		authGroup.POST("/verify-code", r.params.AuthHandler.VerifyCode)
		authGroup.GET("/user", r.params.AuthHandler.GetUser)
	}

	// Token-protected routes
	meGroup := e.Group("/auth")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.GET("/me", r.params.AuthHandler.Me)
	}

	// Renovation project routes
	projectGroup := e.Group("/projects")
	{
		projectGroup.POST("", r.params.ProjectHandler.CreateProject)
		projectGroup.GET("", r.params.ProjectHandler.ListProjects)
		projectGroup.GET("/:id", r.params.ProjectHandler.GetProject)
		projectGroup.PUT("/:id", r.params.ProjectHandler.UpdateProject)
	}

	// Room measurement routes
	measurementGroup := e.Group("/measurements")
	{
		measurementGroup.POST("", r.params.MeasurementHandler.CreateMeasurement)
		measurementGroup.GET("", r.params.MeasurementHandler.ListMeasurements)
		measurementGroup.PUT("/:id", r.params.MeasurementHandler.UpdateMeasurement)
		measurementGroup.DELETE("/:id", r.params.MeasurementHandler.DeleteMeasurement)
	}

	// Project photo routes
	photoGroup := e.Group("/photos")
	{
		photoGroup.POST("", r.params.PhotoHandler.UploadPhoto)
		photoGroup.GET("", r.params.PhotoHandler.ListPhotos)
		photoGroup.DELETE("/:id", r.params.PhotoHandler.DeletePhoto)
	}

	// Supplier catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.params.CatalogHandler.ListProducts)
		catalogGroup.POST("/project-items", r.params.CatalogHandler.AddProjectItem)
		catalogGroup.GET("/project-items", r.params.CatalogHandler.GetProjectItems)
	}

	// Notification routes
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("/send", r.params.NotificationHandler.SendNotification)
		notificationGroup.POST("/test", r.params.NotificationHandler.SendTestNotification)
	}

	// Admin reporting routes behind the shared admin token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AdminMiddleware.Authorize)
	{
		adminGroup.GET("/stats", r.params.AdminHandler.GetStats)
		adminGroup.GET("/projects", r.params.AdminHandler.ListProjects)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
	}

	// Renovation consultant routes
	assistantGroup := e.Group("/assistant")
	{
		assistantGroup.POST("/chat", r.params.AssistantHandler.Chat)
		assistantGroup.GET("/sessions/:id/messages", r.params.AssistantHandler.GetSessionMessages)
	}

	// Voice agent routes
	agentGroup := e.Group("/agent")
	{
		agentGroup.POST("/transcribe", r.params.AgentHandler.Transcribe)
		agentGroup.POST("/chat", r.params.AgentHandler.Chat)
		agentGroup.POST("/orders", r.params.AgentHandler.CreateOrder)
		agentGroup.GET("/orders", r.params.AgentHandler.ListOrders)
		agentGroup.POST("/recordings", r.params.AgentHandler.SaveRecording)
		agentGroup.GET("/recordings", r.params.AgentHandler.ListRecordings)
	}
}
