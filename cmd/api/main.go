// File: cmd/api/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/config"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/routes"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/services"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/storage"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

func main() {
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Reading from environment.")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	var paymentStore store.PaymentStore
	switch cfg.StoreDriver {
	case "mysql":
		paymentStore, err = store.NewGormStore(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("FATAL: Could not open MySQL payment store: %v", err)
		}
		log.Println("INFO: Using MySQL payment store")
	case "json":
		paymentStore, err = store.NewJSONStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("FATAL: Could not open payments file %s: %v", cfg.DataFile, err)
		}
		log.Printf("INFO: Using JSON payment store at %s", cfg.DataFile)
	default:
		log.Fatalf("FATAL: Unknown STORE_DRIVER %q (want json or mysql)", cfg.StoreDriver)
	}

	var proofs storage.ProofStorage
	switch cfg.UploadDriver {
	case "cloudinary":
		proofs, err = storage.NewCloudinaryStorage(cfg)
		if err != nil {
			log.Fatalf("FATAL: Could not initialize Cloudinary storage: %v", err)
		}
	case "local":
		proofs, err = storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			log.Fatalf("FATAL: Could not initialize upload directory: %v", err)
		}
	default:
		log.Fatalf("FATAL: Unknown UPLOAD_DRIVER %q (want local or cloudinary)", cfg.UploadDriver)
	}

	mailer := services.NewSMTPMailer(cfg)
	if cfg.SMTPHost == "" {
		log.Println("WARN: SMTP_HOST not set. Confirmation emails will fail until it is configured.")
	}

	paypal := services.NewPayPalClient(cfg)
	if !paypal.Configured() {
		log.Println("WARN: PayPal credentials not set. SDK captures will be recorded without server-side verification.")
	}

	router := routes.SetupRouter(cfg, paymentStore, proofs, mailer, paypal)

	listenAddr := fmt.Sprintf(":%s", cfg.GinPort)

	log.Printf("🚀 Starting Payment Portal API at: http://localhost%s", listenAddr)

	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("FATAL: Could not start server: %v", err)
	}
}
