package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"aidat_app/internal/handlers"
	appMiddleware "aidat_app/internal/middleware"
	"aidat_app/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Database
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "aidat.db"
	}
	db, err := services.InitDB(os.Getenv("DATABASE_URL"), dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Optional Redis cache for the dashboard aggregates
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, caching disabled: %v", err)
			cache = nil
		}
	}

	office := services.OfficeInfo{
		Name:    os.Getenv("RECEIPT_OFFICE_NAME"),
		Address: os.Getenv("RECEIPT_OFFICE_ADDRESS"),
		Phone:   os.Getenv("RECEIPT_OFFICE_PHONE"),
		Agent:   os.Getenv("RECEIPT_OFFICE_AGENT"),
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = appMiddleware.JSONErrorHandler

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(services.NewMemberService(db))
	coopHandler := handlers.NewCoopHandler(services.NewCoopService(db))
	dueHandler := handlers.NewDueHandler(services.NewDuesService(db))
	receiptHandler := handlers.NewReceiptHandler(services.NewReceiptService(db, office))
	dashboardHandler := handlers.NewDashboardHandler(db, cache)

	api := e.Group("/api")

	// Member routes
	api.POST("/members", memberHandler.CreateMember)
	api.GET("/members", memberHandler.ListMembers)
	api.GET("/members/search", memberHandler.SearchMembers)
	api.GET("/members/:id", memberHandler.GetMember)
	api.PUT("/members/:id", memberHandler.UpdateMember)

	// Cooperative routes
	api.POST("/coops", coopHandler.CreateCoop)
	api.GET("/coops", coopHandler.ListCoops)
	api.GET("/coops/:id", coopHandler.GetCoop)
	api.GET("/coops/:id/members", coopHandler.ListCoopMembers)
	api.GET("/coops/:id/available-members", coopHandler.ListAvailableMembers)
	api.POST("/coops/:id/members", coopHandler.AddMembers)

	// Due schedule routes (per membership link)
	api.GET("/coop-members/:id/dues", dueHandler.ListDues)
	api.POST("/coop-members/:id/dues/generate", dueHandler.GenerateDues)
	api.POST("/coop-members/:id/dues/next", dueHandler.AddNextDue)
	api.POST("/coop-members/:id/dues/yearly", dueHandler.GenerateYearlyDues)
	api.POST("/coop-members/:id/dues/extra", dueHandler.AddExtraDue)
	api.DELETE("/coop-members/:id/dues/:year", dueHandler.DeleteYearlyDues)
	api.GET("/coop-members/:id/receipt-info", receiptHandler.GetReceiptInfo)

	// Single due routes
	api.POST("/dues/:id/payments", dueHandler.PayDue)
	api.PUT("/dues/:id/amount", dueHandler.UpdateDueAmount)
	api.DELETE("/dues/:id", dueHandler.DeleteDue)
	api.GET("/dues/:id/receipt", receiptHandler.GetDueReceipt)

	// Dashboard
	api.GET("/dashboard/summary", dashboardHandler.Summary)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	// The GUI frontend talks over loopback only; never bind a public interface.
	e.Logger.Fatal(e.Start("127.0.0.1:" + port))
}
