package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/sebuszqo/BudgetPlanner/internal/auth"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/application"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/infrastructure"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/interfaces"
	database "github.com/sebuszqo/BudgetPlanner/internal/db"
	"github.com/sebuszqo/BudgetPlanner/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, errs ...[]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(errs) > 0 && len(errs[0]) > 0 {
		payload["errors"] = errs[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router          *http.ServeMux
	db              *database.DBService
	authHandler     *auth.Handler
	authService     auth.Service
	userHandler     *user.Handler
	ruleHandler     *interfaces.RuleHandler
	categoryHandler *interfaces.CategoryHandler
}

func NewServer(
	db *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	ruleHandler *interfaces.RuleHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		router:          http.NewServeMux(),
		db:              db,
		authHandler:     authHandler,
		authService:     authService,
		userHandler:     userHandler,
		ruleHandler:     ruleHandler,
		categoryHandler: categoryHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING Provided")
	}
	return nil
}

// handleReady reports readiness based on database health; a ready instance
// must be able to reach its store.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.db.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/2fa/verify", http.HandlerFunc(s.authHandler.HandleVerifyTwoFactor))
	publicRoutes.Handle("GET /api/rules", http.HandlerFunc(s.ruleHandler.ListRules))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()
	withAuth := s.authService.JWTAccessTokenMiddleware()

	protectedRoutes.Handle("GET /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	protectedRoutes.Handle("PUT /api/protected/profile", withAuth(http.HandlerFunc(s.userHandler.HandleUpdateProfile)))
	protectedRoutes.Handle("POST /api/protected/change-password", withAuth(http.HandlerFunc(s.userHandler.HandleChangePassword)))

	protectedRoutes.Handle("POST /api/protected/2fa/register", withAuth(http.HandlerFunc(s.authHandler.HandleRegisterTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/verify-registration", withAuth(http.HandlerFunc(s.authHandler.HandleVerifyTwoFactorCode)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", withAuth(http.HandlerFunc(s.authHandler.HandleDisableTwoFactor)))

	// RULES API
	protectedRoutes.Handle("POST /api/protected/rules/select", withAuth(http.HandlerFunc(s.ruleHandler.SelectRule)))
	protectedRoutes.Handle("GET /api/protected/rules/selected", withAuth(http.HandlerFunc(s.ruleHandler.GetSelectedRule)))

	// CATEGORIES API
	protectedRoutes.Handle("POST /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/protected/categories", withAuth(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}/amount", withAuth(http.HandlerFunc(s.categoryHandler.AdjustAmount)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", withAuth(http.HandlerFunc(s.categoryHandler.DeleteCategory)))
	protectedRoutes.Handle("GET /api/protected/budget/summary", withAuth(http.HandlerFunc(s.categoryHandler.GetSummary)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	authRepo := auth.NewUserRepository(dbService.DB)
	jwtManager := auth.NewJWTManager()
	authenticator := auth.Authenticator{}
	authService := auth.NewAuthService(authRepo, userService, jwtManager, authenticator)
	authHandler := auth.NewHandler(authService)

	ruleRepo := infrastructure.NewRuleRepository(dbService.DB)
	profileRepo := infrastructure.NewProfileRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)

	ruleService := application.NewRuleService(ruleRepo, profileRepo)
	categoryService := application.NewCategoryService(categoryRepo, profileRepo)

	ruleHandler := interfaces.NewRuleHandler(ruleService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, ruleHandler, categoryHandler)
	server.RegisterRoutes()

	if err := ruleService.EnsureDefaultRules(); err != nil {
		log.Fatalf("Could not seed budgeting rules: %v", err)
	}
	log.Println("Budgeting rules are in place")

	if err := StartMonthlyResetScheduler(categoryService); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// StartMonthlyResetScheduler zeroes category amounts at the start of every
// month so spending is tracked per budgeting month.
func StartMonthlyResetScheduler(categoryService *application.CategoryService) error {
	c := cron.New()
	_, err := c.AddFunc("@monthly", func() {
		if err := categoryService.ResetMonthlyAmounts(); err != nil {
			log.Printf("Error resetting category amounts: %v", err)
		} else {
			log.Println("Category amounts reset for the new month.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
