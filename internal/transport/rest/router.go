package rest

import (
	"net/http"

	"chatfuture/internal/catalog"
	"chatfuture/internal/logging"
	"chatfuture/internal/service"
	"chatfuture/internal/transport/rest/handler"
	"chatfuture/internal/transport/rest/middleware"
	"chatfuture/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog         *catalog.Catalog
	AuthService     *service.AuthService
	SessionService  *service.SessionService
	AnswerService   *service.AnswerService
	ScoringService  *service.ScoringService
	ProfileService  *service.ProfileService
	ReportService   *service.ReportService
	WSHub           *ws.Hub
	Logger          *logging.Logger
	CORSOrigins     string
	AllowTokenIssue bool
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.AllowTokenIssue)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	sessionHandler := handler.NewSessionHandler(c.SessionService, c.AnswerService, c.ScoringService)
	resultHandler := handler.NewResultHandler(c.ScoringService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORSOrigins))
	r.Use(middleware.RequestLogger(c.Logger))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/instruments", catalogHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/instruments/{instrument}/questions", catalogHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/auth/token", authHandler.IssueToken).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.UserWS).Methods("GET")

	// Identity-scoped routes
	user := v1.NewRoute().Subrouter()
	user.Use(authMW.Identify)

	user.HandleFunc("/session", sessionHandler.Start).Methods("POST", "OPTIONS")
	user.HandleFunc("/session", sessionHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/session", sessionHandler.Delete).Methods("DELETE", "OPTIONS")
	user.HandleFunc("/session/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	user.HandleFunc("/session/progress", sessionHandler.Progress).Methods("GET", "OPTIONS")
	user.HandleFunc("/session/answers", sessionHandler.SaveAnswer).Methods("POST", "OPTIONS")
	user.HandleFunc("/session/instruments/{instrument}/complete", sessionHandler.CompleteInstrument).Methods("POST", "OPTIONS")
	user.HandleFunc("/session/complete", sessionHandler.Complete).Methods("POST", "OPTIONS")

	user.HandleFunc("/results", resultHandler.Calculate).Methods("POST", "OPTIONS")
	user.HandleFunc("/results", resultHandler.Get).Methods("GET", "OPTIONS")

	user.HandleFunc("/reports", reportHandler.Trigger).Methods("POST", "OPTIONS")
	user.HandleFunc("/reports", reportHandler.Get).Methods("GET", "OPTIONS")

	user.HandleFunc("/profile/basic-info", profileHandler.Put).Methods("PUT", "OPTIONS")
	user.HandleFunc("/profile/basic-info", profileHandler.Get).Methods("GET", "OPTIONS")
	user.HandleFunc("/profile/basic-info", profileHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
