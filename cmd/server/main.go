package main

import (
	"fmt"
	stdlog "log"
	"net/http"

	"github.com/cklob23/discipleship-journey-app/internal/auth"
	"github.com/cklob23/discipleship-journey-app/internal/config"
	"github.com/cklob23/discipleship-journey-app/internal/database"
	"github.com/cklob23/discipleship-journey-app/internal/handler"
	"github.com/cklob23/discipleship-journey-app/internal/hub"
	applog "github.com/cklob23/discipleship-journey-app/internal/log"
	"github.com/cklob23/discipleship-journey-app/internal/metrics"
	"github.com/cklob23/discipleship-journey-app/internal/mw"
	"github.com/cklob23/discipleship-journey-app/internal/notify"
	"github.com/cklob23/discipleship-journey-app/internal/service"
	"github.com/cklob23/discipleship-journey-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Swagger imports
	_ "github.com/cklob23/discipleship-journey-app/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Disciple Connect API
// @version         1.0
// @description     This is the API for the Disciple Connect mentoring service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	applog.Init(config.AppConfig.AppEnv)

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire the synchronization core
	stores := store.NewGormStores(database.DB)
	events := hub.NewHub()
	mailer := notify.NewMailer(config.AppConfig.SMTPAddr, config.AppConfig.SMTPFrom)

	directory := service.NewProfileDirectory(stores.Profiles)
	registry := service.NewConnectionRegistry(stores.Connections, stores.Profiles)
	ledger := service.NewCovenantLedger(stores.Covenants, registry, events)
	messageLog := service.NewMessageLog(stores.Messages, stores.Profiles, registry, events, mailer)

	handler.Setup(directory, registry, ledger, messageLog, events)

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		authRoutes.Use(mw.RateLimit(5, 10))
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Profile routes (protected)
		profileRoutes := apiV1.Group("/profiles")
		profileRoutes.Use(auth.AuthMiddleware())
		{
			profileRoutes.GET("", handler.SearchProfiles) // Must be before /:id
			profileRoutes.POST("", handler.CreateProfile)
			profileRoutes.GET("/me", handler.GetMyProfile)
			profileRoutes.GET("/:id", handler.GetProfileByID)
			profileRoutes.POST("/:id/invite", handler.InvitePerson)
		}

		// Connection routes (protected)
		connectionRoutes := apiV1.Group("/connections")
		connectionRoutes.Use(auth.AuthMiddleware())
		{
			connectionRoutes.GET("", handler.ListConnections)
			connectionRoutes.POST("/:id/accept", handler.AcceptConnection)
			connectionRoutes.POST("/:id/decline", handler.DeclineConnection)

			// Covenant
			connectionRoutes.GET("/:id/covenant", handler.GetCovenant)
			connectionRoutes.PUT("/:id/covenant", handler.UpdateCovenant)
			connectionRoutes.POST("/:id/covenant/sign", handler.SignCovenant)

			// Chat
			connectionRoutes.GET("/:id/messages", handler.ListMessages)
			connectionRoutes.POST("/:id/messages", handler.SendMessage)
			connectionRoutes.GET("/:id/events", handler.StreamEvents)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	stdlog.Fatal(router.Run(addr))
}
