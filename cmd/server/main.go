package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"topup_store_echo/internal/config"
	"topup_store_echo/internal/handlers"
	appMiddleware "topup_store_echo/internal/middleware"
	"topup_store_echo/internal/models"
	"topup_store_echo/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Firebase
	adminClient, err := services.InitFirebase(cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Sign-out revocation will be local-only until valid credentials are provided")
	}

	provider := services.NewFirebaseProvider(adminClient, cfg.FirebaseAPIKey)
	authService := services.NewAuthService(provider)

	ledger := services.NewOrderLedger()
	catalog := services.NewCatalog()

	var gateway services.PaymentGateway = &services.SimulatedGateway{Decline: cfg.SimulateDecline}
	if cfg.PaymentGateway == config.GatewayMidtrans {
		gateway = services.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransClientKey, cfg.MidtransProduction)
	}
	paymentService := services.NewPaymentService(gateway, ledger)

	// Session transitions are observed through the subscription, the same
	// channel the mobile client re-renders on. The listener lives as long as
	// the process, so the unsubscribe func is not kept.
	authService.OnSessionChange(func(sess *models.Session) {
		if sess == nil {
			log.Println("session change: signed out")
			return
		}
		log.Printf("session change: signed in as %s", sess.User.Email)
	})

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, ledger)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	orderHandler := handlers.NewOrderHandler(ledger, catalog, paymentService)

	// Public routes
	e.POST("/auth/register", authHandler.HandleRegister)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)
	e.GET("/auth/session", authHandler.Session)

	e.GET("/onboarding", catalogHandler.Onboarding)
	e.GET("/games", catalogHandler.ListGames)
	e.GET("/games/:id", catalogHandler.GetGame)
	e.GET("/payment-methods", catalogHandler.PaymentMethods)

	// Gateway callback for redirect-based payments
	e.POST("/payments/notify", orderHandler.HandlePaymentNotification)

	// Protected routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireSession(authService))
	protected.GET("/orders", orderHandler.ListOrders)
	protected.POST("/orders", orderHandler.CreateOrder)
	protected.POST("/orders/sample", orderHandler.SeedSampleOrders)
	protected.DELETE("/orders", orderHandler.ClearOrders)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
