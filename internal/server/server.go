package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jobproj/resume-builder/internal/config"
	"github.com/jobproj/resume-builder/internal/db"
	"github.com/jobproj/resume-builder/internal/server/middleware"
	"github.com/jobproj/resume-builder/internal/types"
)

// Server is the HTTP server for the resume API.
type Server struct {
	httpServer  *http.Server
	db          db.Store
	close       func()
	jwtService  *JWTService
	userService *UserService
	validator   *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Addr        string
	DatabaseURL string
}

// New connects to the database, applies the schema and builds a server
// ready to Start.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:          database,
		close:       database.Close,
		jwtService:  NewJWTService(jwtConfig),
		userService: NewUserService(database, passwordConfig),
		validator:   validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router. Everything except signup, login and
// health requires a bearer token.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(h))
	}

	// Resumes
	protected("POST /api/resumes", s.handleCreateResume)
	protected("GET /api/resumes", s.handleListResumes)
	protected("GET /api/resumes/{id}", s.handleGetResume)
	protected("PATCH /api/resumes/{id}", s.handleUpdateResume)
	protected("DELETE /api/resumes/{id}", s.handleDeleteResume)

	// Section collections
	protected("GET /api/resumes/{id}/educations", s.handleListEducations)
	protected("POST /api/resumes/{id}/educations", s.handleCreateEducation)
	protected("DELETE /api/educations/{id}", s.handleDeleteEducation)

	protected("GET /api/resumes/{id}/experiences", s.handleListExperiences)
	protected("POST /api/resumes/{id}/experiences", s.handleCreateExperience)
	protected("DELETE /api/experiences/{id}", s.handleDeleteExperience)

	protected("GET /api/resumes/{id}/projects", s.handleListProjects)
	protected("POST /api/resumes/{id}/projects", s.handleCreateProject)
	protected("DELETE /api/projects/{id}", s.handleDeleteProject)

	// Skills
	protected("GET /api/skills", s.handleSearchSkills)
	protected("POST /api/skills", s.handleCreateSkill)
	protected("GET /api/resumes/{id}/skills", s.handleListResumeSkills)
	protected("PUT /api/resumes/{id}/skills/{skillId}", s.handlePutResumeSkill)
	protected("DELETE /api/resumes/{id}/skills/{skillId}", s.handleDeleteResumeSkill)

	return mux
}

// Start listens for requests until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.close != nil {
		s.close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.ok(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ok writes a success envelope with the given data.
func (s *Server) ok(w http.ResponseWriter, status int, data any) {
	env := types.Envelope{Success: true}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf("Error encoding response data: %v", err)
			s.fail(w, fmt.Errorf("failed to encode response"))
			return
		}
		env.Data = raw
	}
	s.writeEnvelope(w, status, env)
}

// fail writes a failure envelope. The status and code come from the error
// type via HTTPStatus and ErrorCode.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the log.
		log.Printf("Internal error: %v", err)
		message = "internal server error"
	}
	s.writeEnvelope(w, status, types.Envelope{
		Success: false,
		Code:    ErrorCode(err),
		Message: message,
	})
}

func (s *Server) writeEnvelope(w http.ResponseWriter, status int, env types.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// decodeJSON decodes a request body, mapping malformed JSON to a validation
// error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	return nil
}

// validateStruct maps validator errors to an ErrValidation carrying the first
// failing field.
func (s *Server) validateStruct(v any) error {
	if err := s.validator.Struct(v); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
		}
		return &ErrValidation{Field: "request", Message: "invalid request"}
	}
	return nil
}
