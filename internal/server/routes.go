package routes

import (
	"github.com/MatiasFerreyra/Journal_Api/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", middleware.Logout)
		protected.GET("/me", middleware.GetCurrentUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.GET("/plan", middleware.GetPlan)
		protected.POST("/plan", middleware.CreatePlan)
		protected.DELETE("/plan", middleware.DeletePlan)

		protected.GET("/trades", middleware.GetTrades)
		protected.POST("/trades", middleware.CreateTrade)
		protected.GET("/trades/export", middleware.ExportTrades)

		protected.GET("/dashboard", middleware.GetDashboard)

		protected.GET("/monthly-plan", middleware.GetMonthlyPlan)
		protected.POST("/monthly-plan", middleware.CreateMonthlyPlan)
		protected.PATCH("/monthly-plan/:id/days/:day", middleware.ToggleDayCompletion)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.DELETE("/users/:email", middleware.DeleteUserByAdmin)
	}
}
