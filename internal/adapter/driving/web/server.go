package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/costdash/cost-dashboard-go/internal/application/usecase"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

//go:embed static/index.html
var staticFS embed.FS

// sessionCookie carries the opaque session token issued at login.
const sessionCookie = "costdash_session"

// Server is the HTTP driving adapter: it exposes the dashboard, auth, and
// prediction use cases as a JSON API plus one embedded page that renders the
// charts in the browser.
type Server struct {
	dashboard  *usecase.DashboardUseCase
	auth       *usecase.AuthUseCase
	prediction *usecase.PredictionUseCase
	console    types.ConsoleInterface

	mux  *http.ServeMux
	page *template.Template
}

// NewServer creates the HTTP server adapter and registers its routes.
func NewServer(
	dashboard *usecase.DashboardUseCase,
	auth *usecase.AuthUseCase,
	prediction *usecase.PredictionUseCase,
	console types.ConsoleInterface,
) (*Server, error) {
	page, err := template.ParseFS(staticFS, "static/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		dashboard:  dashboard,
		auth:       auth,
		prediction: prediction,
		console:    console,
		mux:        http.NewServeMux(),
		page:       page,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /", s.handleIndex)
	s.mux.HandleFunc("POST /api/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/logout", s.handleLogout)
	s.mux.HandleFunc("GET /api/session", s.handleSession)

	s.mux.HandleFunc("GET /api/dashboard", s.requireSession(s.handleDashboard))
	s.mux.HandleFunc("GET /api/filters", s.requireSession(s.handleFilters))
	s.mux.HandleFunc("GET /api/profile", s.requireSession(s.handleGetProfile))
	s.mux.HandleFunc("PUT /api/profile", s.requireSession(s.handlePutProfile))
	s.mux.HandleFunc("GET /api/models", s.requireSession(s.handleModels))
	s.mux.HandleFunc("POST /api/train", s.requireSession(s.handleTrain))
	s.mux.HandleFunc("POST /api/predict", s.requireSession(s.handlePredict))
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.console.LogInfo("Dashboard listening on http://%s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requireSession rejects requests without a valid session token. API clients
// get a JSON 401; the page itself handles showing the login form.
func (s *Server) requireSession(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := s.sessionUser(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		next(w, r, username)
	}
}

func (s *Server) sessionUser(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return s.auth.Authenticate(cookie.Value)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
