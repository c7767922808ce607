package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// app is the single application state controller for this process.
var app *Controller

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var store Store
	switch backend := getEnvOrDefault("DATA_BACKEND", "postgres"); backend {
	case "memory":
		log.Println("Using in-memory store; data will not survive restarts")
		store = newMemoryStore()
	case "postgres":
		dbHost := getEnvOrDefault("DB_HOST", "localhost")
		dbPort := getEnvOrDefault("DB_PORT", "5432")
		dbUser := getEnvOrDefault("DB_USER", "postgres")
		dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
		dbName := getEnvOrDefault("DB_NAME", "montra")

		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		pool, err := connectPool(connStr)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer pool.Close()

		migrationsPath := filepath.Join(".", "db", "migrations")
		if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
			log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
		} else {
			migrationDB, err := sql.Open("postgres", connStr)
			if err != nil {
				log.Fatal("Error opening migration connection: ", err)
			}
			if err := runMigrations(migrationDB, migrationsPath); err != nil {
				log.Fatal("Error running migrations: ", err)
			}
			migrationDB.Close()
			log.Println("Database migrations completed successfully")
		}

		store = newPostgresStore(pool)
	default:
		log.Fatalf("Unknown DATA_BACKEND %q", backend)
	}

	app = NewController(store, getEnvOrDefault("MONTRA_USER", "local"))
	app.Hydrate(context.Background())

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// registerRoutes wires the API surface. Shared with the test router.
func registerRoutes(r *gin.Engine) {
	// Session gate
	r.POST("/api/login", login)
	r.POST("/api/logout", logout)
	r.GET("/api/session", getSession)
	r.POST("/api/reset", resetAll)

	// Collections
	r.GET("/api/transactions", getTransactions)
	r.POST("/api/transactions", createTransaction)
	r.DELETE("/api/transactions/:id", deleteTransaction)
	r.GET("/api/budgets", getBudgets)
	r.PUT("/api/budgets", saveBudget)
	r.DELETE("/api/budgets/:category", deleteBudget)
	r.GET("/api/goals", getGoals)
	r.POST("/api/goals", createGoal)
	r.PUT("/api/goals/:id", updateGoal)
	r.POST("/api/goals/:id/contribute", contributeToGoal)
	r.DELETE("/api/goals/:id", deleteGoal)
	r.GET("/api/investments", getInvestments)
	r.POST("/api/investments", createInvestment)
	r.PUT("/api/investments/:id", updateInvestment)
	r.DELETE("/api/investments/:id", deleteInvestment)

	// Settings
	r.GET("/api/settings", getSettings)
	r.PUT("/api/settings", updateSettings)
	r.PUT("/api/settings/investment-amount", setInvestmentAmount)

	// Derived analytics
	r.GET("/api/analytics/summary", getSummary)
	r.GET("/api/analytics/categories", getCategoryBreakdown)
	r.GET("/api/analytics/trend", getTrend)
	r.GET("/api/analytics/intensity", getIntensity)
	r.GET("/api/analytics/health", getHealth)
	r.GET("/api/analytics/comparison", getComparison)
	r.GET("/api/analytics/forecast", getForecast)
	r.GET("/api/analytics/budgets", getBudgetStatus)
	r.GET("/api/analytics/goals", getGoalProjections)
	r.GET("/api/analytics/portfolio", getPortfolio)

	// Insights, export, demo data
	r.GET("/api/insights", getInsight)
	r.GET("/api/insights/context", getInsightContext)
	r.GET("/api/export", exportData)
	r.POST("/api/demo-data", createDemoData)
}
