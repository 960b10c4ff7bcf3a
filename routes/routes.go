package routes

import (
	"compensation-request-api/controllers"
	"compensation-request-api/middleware"
	"compensation-request-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Compensation Request API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Submission window state
			protected.GET("/submission-window", controllers.GetSubmissionWindow)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Notifications
			protected.GET("/notifications", controllers.ListNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Work types
			protected.GET("/work-types", controllers.ListWorkTypes)
			protected.POST("/work-types", controllers.AddWorkType)
			protected.DELETE("/work-types/:id", middleware.RequireRole(models.RoleAdmin, models.RoleAdministration), controllers.DeleteWorkType)

			// Compensation requests
			requests := protected.Group("/requests")
			{
				requests.GET("/:id", controllers.GetRequestDetail)

				// Applicant surface
				requests.GET("/mine", middleware.RequireRole(models.RoleApplicant), controllers.ListMyRequests)
				requests.POST("/draft", middleware.RequireRole(models.RoleApplicant), controllers.SaveRequest)
				requests.POST("/submit", middleware.RequireRole(models.RoleApplicant), controllers.SubmitRequest)
				requests.POST("/:id/cancel", middleware.RequireRole(models.RoleApplicant), controllers.CancelRequest)
				requests.POST("/:id/appeal", middleware.RequireRole(models.RoleApplicant), controllers.AppealRequest)
				requests.POST("/:id/appeal-works", middleware.RequireRole(models.RoleApplicant), controllers.AppealWorks)

				// Staff listing (labels follow the caller's role)
				requests.GET("", middleware.RequireRole(models.RoleAdministration, models.RoleResearch, models.RoleCommittee, models.RoleAdmin), controllers.ListRequests)

				// Administration stage
				requests.POST("/:id/return", middleware.RequireRole(models.RoleAdministration), controllers.ReturnRequest)
				requests.POST("/:id/to-research", middleware.RequireRole(models.RoleAdministration), controllers.AdvanceToResearch)
				requests.POST("/:id/mark-ready", middleware.RequireRole(models.RoleAdministration), controllers.MarkReadyForBatch)
				requests.PUT("/:id/work-level", middleware.RequireRole(models.RoleAdministration), controllers.UpdateWorkLevel)

				// Research stage
				requests.GET("/:id/history", middleware.RequireRole(models.RoleResearch), controllers.CheckSubmissionHistory)
				requests.POST("/:id/verify-works", middleware.RequireRole(models.RoleResearch), controllers.VerifyWorks)
				requests.POST("/:id/flag-duplicates", middleware.RequireRole(models.RoleResearch), controllers.FlagDuplicateWorks)
				requests.POST("/:id/finalize-check", middleware.RequireRole(models.RoleResearch), controllers.FinalizeResearch)

				// Decisions
				requests.POST("/:id/approve", middleware.RequireRole(models.RoleCommittee), controllers.ApproveRequest)
				requests.POST("/:id/reject", middleware.RequireRole(models.RoleAdministration, models.RoleCommittee), controllers.RejectRequest)
			}

			// Consideration rounds
			batches := protected.Group("/batches")
			{
				batches.GET("", middleware.RequireRole(models.RoleAdministration, models.RoleCommittee, models.RoleAdmin), controllers.ListBatches)
				batches.POST("", middleware.RequireRole(models.RoleAdministration), controllers.CreateBatch)
				batches.GET("/:id/summary", middleware.RequireRole(models.RoleAdministration, models.RoleCommittee), controllers.GetBatchSummary)
				batches.POST("/:id/announce", middleware.RequireRole(models.RoleCommittee), controllers.AnnounceBatch)
			}

			// Configuration (admin)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin, models.RoleAdministration))
			{
				admin.GET("/timelines", controllers.ListTimelines)
				admin.POST("/timelines", controllers.SaveTimeline)
				admin.DELETE("/timelines/:year", controllers.DeleteTimeline)

				admin.GET("/criteria", controllers.ListCriteria)
				admin.GET("/criteria/default", controllers.GetDefaultCriteria)
				admin.POST("/criteria", controllers.SaveCriteria)
			}
		}
	}
}
