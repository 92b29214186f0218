package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/middleware"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/database"
	"go-catalog-api/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Item{}, &model.Asset{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Object storage signer
	signer, err := storage.NewS3SignerFromEnv()
	if err != nil {
		log.Fatal("Failed to configure object storage: ", err)
	}
	bucket := os.Getenv("S3_BUCKET")
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000/api/v1/public"
	}

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewItemRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	userRepo := repository.NewUserRepo(db)

	itemService := service.NewItemService(itemRepo, wsHub)
	assetService := service.NewAssetService(assetRepo, itemRepo, signer, bucket)
	importService := service.NewImportService(itemRepo, db, wsHub)
	publicService := service.NewPublicService(itemRepo, assetRepo, signer, bucket, baseURL)
	authService := service.NewAuthService(userRepo)

	itemHandler := handler.NewItemHandler(itemService, importService)
	assetHandler := handler.NewAssetHandler(assetService)
	publicHandler := handler.NewPublicHandler(publicService)
	authHandler := handler.NewAuthHandler(authService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Catalog API v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	public := api.Group("/public")
	public.Get("/:hash", publicHandler.GetByHash)
	public.Get("/:hash/qr", publicHandler.GetQRCode)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/items", itemHandler.GetItems)
	protected.Post("/items", itemHandler.CreateItem)
	protected.Delete("/items", itemHandler.DeleteItems)
	protected.Post("/items/upload", itemHandler.UploadItems)
	protected.Get("/items/:id", itemHandler.GetItem)
	protected.Put("/items/:id", itemHandler.UpdateItem)
	protected.Delete("/items/:id", itemHandler.DeleteItem)
	protected.Post("/items/:id/rotate-hash", itemHandler.RotateHash)
	protected.Post("/items/:id/assets", assetHandler.CreateAsset)

	protected.Get("/assets/:id", assetHandler.GetAsset)
	protected.Put("/assets/:id", assetHandler.UpdateAsset)
	protected.Delete("/assets/:id", assetHandler.DeleteAsset)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default superuser if it doesn't exist yet.
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:       email,
		FullName:    "Administrator",
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
