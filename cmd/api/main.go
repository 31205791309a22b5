package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/auth"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/chat"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/db"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/feedback"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/middleware"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/ocr"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/predict"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/scan"
	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"MODEL_SERVER_URL",
		"LLM_BASE_URL",
		"LLM_API_KEY",
		"AI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	mustHaveBinary("tesseract")

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "https://medinauts.vercel.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	r.GET("/user-count", authHandler.UserCount)

	// ───────────────────────── SCAN PIPELINE ─────────────────────────
	scanRepo := scan.NewPostgresRepository(pgDB)
	scanService := scan.NewService(ocr.NewTesseract(), scanRepo, r2Client)
	scanHandler := scan.NewHandler(scanService)

	scans := r.Group("/scan-report")
	scans.Use(middleware.AuthMiddleware())
	{
		scans.POST("", scanHandler.ScanReport)
		scans.GET("/history", scanHandler.History)
	}

	// ───────────────────────── PREDICTION ─────────────────────────
	predictHandler := predict.NewHandler(predict.NewModelClient())

	protected := r.Group("/predict")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", predictHandler.Predict)
	}

	// ───────────────────────── CHAT ─────────────────────────
	chatHandler := chat.NewHandler(chat.NewClient())
	r.POST("/chat", chatHandler.Chat)

	// ───────────────────────── FEEDBACK ─────────────────────────
	feedbackHandler := feedback.NewHandler(feedback.NewPostgresRepository(pgDB))
	r.POST("/feedback", feedbackHandler.Submit)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Medinauts API is running"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("API running at http://localhost:" + port)
	r.Run(":" + port)
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
