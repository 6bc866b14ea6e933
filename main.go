package main

import (
	"html/template"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quill/internal/handlers"
	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repositories"
	"quill/internal/services"
	"quill/pkg/mailer"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_PATH", "quill.db")
	viper.SetDefault("SMTP_PORT", 587)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	sessionSecret := viper.GetString("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	// --- Database ---
	// Postgres when DATABASE_URL is set, a local sqlite file otherwise.
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.BlogPost{}, &models.Comment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Mail relay ---
	mailClient := mailer.NewClient(mailer.Config{
		Host:     viper.GetString("SMTP_HOST"),
		Port:     viper.GetInt("SMTP_PORT"),
		Username: viper.GetString("SMTP_USER"),
		Password: viper.GetString("SMTP_PASSWORD"),
	})

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, sessionSecret)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	contactService := services.NewContactService(mailClient, viper.GetString("CONTACT_RECIPIENT"))

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService, commentService)
	contactHandler := handlers.NewContactHandler(contactService)

	// --- Fiber app ---
	engine := html.New("./web/views", ".html")
	// Post bodies come from the editor as HTML and render unescaped.
	engine.AddFunc("safeHTML", func(s string) template.HTML { return template.HTML(s) })
	engine.AddFunc("canEdit", postService.CanEdit)
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.LoadUser(authService))

	authHandler.RegisterRoutes(app)
	contactHandler.RegisterRoutes(app)
	postHandler.RegisterRoutes(app, middleware.RequireAuth())

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects to postgres when DATABASE_URL is set and falls back
// to a local sqlite file for development.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("DB_PATH")), &gorm.Config{})
}
