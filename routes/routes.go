package routes

import (
	"github.com/ycz425/VertTracker-API/controllers"
	"github.com/ycz425/VertTracker-API/middlewares"
	"github.com/ycz425/VertTracker-API/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db)
	jumpSvc := services.NewJumpService(db)
	summarySvc := services.NewSummaryService(jumpSvc)

	authCtl := controllers.NewAuthController(authSvc)
	jumpCtl := controllers.NewJumpController(jumpSvc)
	plotCtl := controllers.NewPlotController(jumpSvc)
	summaryCtl := controllers.NewSummaryController(summarySvc)

	// Public auth routes
	api := r.Group("/api")
	{
		api.POST("/register", authCtl.Register)
		api.POST("/login", authCtl.Login)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/record-jump", jumpCtl.RecordJump)
		protected.GET("/jumps", jumpCtl.GetJumps)
		protected.GET("/plot", plotCtl.GetPlot)
		protected.GET("/summary", summaryCtl.GetSummary)
	}

	return r
}
