package routes

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/config"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/handlers"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/middleware"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/services"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/storage"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

func SetupRouter(cfg *config.Config, st store.PaymentStore, proofs storage.ProofStorage, mailer services.Mailer, paypal *services.PayPalClient) *gin.Engine {
	router := gin.Default()

	if cfg.FrontendURL == "" {
		log.Println("WARN: FRONTEND_URL not set. CORS might be too permissive or too restrictive.")
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Email"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
		}))
	} else {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{cfg.FrontendURL},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Email"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
		}))
		log.Printf("INFO: CORS configured to allow origin: %s", cfg.FrontendURL)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Uploaded proof images are public so the admin table can render them.
	if cfg.UploadDriver == "local" {
		router.Static("/uploads", cfg.UploadDir)
	}

	paymentHandler := handlers.NewPaymentHandler(st, proofs, paypal)
	verifyHandler := handlers.NewVerifyHandler(st, proofs, mailer)
	adminHandler := handlers.NewAdminHandler(cfg.AdminEmail)

	api := router.Group("/api")
	{
		api.POST("/payments", paymentHandler.HandleSubmitPayment)
		api.GET("/user-info", paymentHandler.HandleUserInfo)
		api.POST("/admin/login", adminHandler.HandleAdminLogin)

		admin := api.Group("/", middleware.AdminOnly(cfg.AdminEmail))
		{
			admin.GET("/payments", paymentHandler.HandleListPayments)
			admin.GET("/payments/:id", paymentHandler.HandleGetPayment)
			admin.POST("/payments/:id/verify", verifyHandler.HandleVerifyPayment)
			admin.POST("/send-confirmation", verifyHandler.HandleSendConfirmation)
		}
	}

	log.Println("✅ Registered API Routes:")
	for _, route := range router.Routes() {
		log.Println(fmt.Sprintf("    - %-6s %s", route.Method, route.Path))
	}

	return router
}
