package main

import (
	"net/http"
	"os"

	"harvestworld/config"
	"harvestworld/handlers"
	"harvestworld/logger"
	"harvestworld/middleware"
	"harvestworld/models"
	"harvestworld/repositories"
	"harvestworld/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
	})
	if envErr != nil {
		log := logger.Get()
		log.Info().Msg("no .env file found")
	}

	config.LoadJWT()

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	plantRepo := repositories.NewPlantRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	expertRequestRepo := repositories.NewExpertRequestRepository(db)
	forumRepo := repositories.NewForumRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	plantService := services.NewPlantService(plantRepo, categoryRepo)
	articleService := services.NewArticleService(articleRepo)
	moderationService := services.NewModerationService(articleRepo, expertRequestRepo, userRepo)
	expertRequestService := services.NewExpertRequestService(expertRequestRepo, userRepo)
	forumService := services.NewForumService(forumRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	uploadService := services.NewUploadService("uploads")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	plantHandler := handlers.NewPlantHandler(plantService)
	articleHandler := handlers.NewArticleHandler(articleService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	expertRequestHandler := handlers.NewExpertRequestHandler(expertRequestService)
	forumHandler := handlers.NewForumHandler(forumService)
	commentHandler := handlers.NewCommentHandler(commentService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded files
	router.Static("/uploads", "./uploads")

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes (approved content only)
		public := v1.Group("/public")
		{
			public.GET("/plants", plantHandler.GetPlants)
			public.GET("/plants/:id", plantHandler.GetPlant)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/forum/topics", forumHandler.GetTopics)
			public.GET("/forum/topics/:id", forumHandler.GetTopic)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			// Uploads
			protected.POST("/uploads/:entity", uploadHandler.UploadImage)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
				articles.POST("/:id/comments", commentHandler.CreateComment)
				articles.GET("/:id/comments", commentHandler.GetComments)
			}
			protected.DELETE("/comments/:id", commentHandler.DeleteComment)

			// Forum
			forum := protected.Group("/forum")
			{
				forum.POST("/topics", forumHandler.CreateTopic)
				forum.POST("/topics/:id/replies", forumHandler.CreateReply)
				forum.DELETE("/topics/:id", forumHandler.DeleteTopic)
				forum.DELETE("/replies/:id", forumHandler.DeleteReply)
			}

			// Expert requests
			protected.POST("/expert-requests", expertRequestHandler.CreateRequest)
			protected.GET("/expert-requests/mine", expertRequestHandler.GetMyRequests)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.PUT("/articles/:id/approve", moderationHandler.ApproveArticle)
				admin.PUT("/articles/:id/reject", moderationHandler.RejectArticle)
				admin.GET("/expert-requests", moderationHandler.GetExpertRequests)
				admin.PUT("/expert-requests/:id/approve", moderationHandler.ApproveExpertRequest)
				admin.PUT("/expert-requests/:id/reject", moderationHandler.RejectExpertRequest)
				admin.GET("/users", moderationHandler.GetUsers)
				admin.PUT("/users/:id/role", moderationHandler.UpdateUserRole)

				admin.POST("/plants", plantHandler.CreatePlant)
				admin.PUT("/plants/:id", plantHandler.UpdatePlant)
				admin.DELETE("/plants/:id", plantHandler.DeletePlant)
				admin.POST("/categories", categoryHandler.CreateCategory)
				admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log := logger.Get()
	log.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
