package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/costdash/cost-dashboard-go/internal/domain/entity"
	"github.com/costdash/cost-dashboard-go/internal/shared/types"
)

// handleIndex serves the embedded page for every non-API path; the page shows
// the login view or the dashboard itself based on the session. Unknown /api/
// paths stay 404 so clients see their mistakes.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Organization string
	}{
		Organization: s.dashboard.Dataset().Organization,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.console.LogError("Failed to render page: %s", err)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		s.console.LogError("Login failed: %s", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"username":      req.Username,
		"authenticated": true,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		s.auth.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	username, ok := s.sessionUser(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"username":      username,
		"authenticated": ok,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, _ string) {
	data, err := s.dashboard.BuildDashboard(filterFromQuery(r))
	if err != nil {
		s.console.LogError("Failed to build dashboard: %s", err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request, _ string) {
	writeJSON(w, http.StatusOK, s.dashboard.FilterOptions(filterFromQuery(r)))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request, username string) {
	profile, err := s.auth.Profile(username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request, username string) {
	var profile entity.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.auth.UpdateProfile(username, profile); err != nil {
		s.console.LogError("Failed to update profile for %s: %s", username, err)
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "profile updated"})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request, _ string) {
	writeJSON(w, http.StatusOK, s.prediction.Status())
}

func (s *Server) handleTrain(w http.ResponseWriter, r *http.Request, _ string) {
	var req struct {
		Model        string  `json:"model"`
		Epochs       int     `json:"epochs"`
		LearningRate float64 `json:"learning_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.prediction.Train(entity.ModelKind(req.Model), req.Epochs, req.LearningRate)
	if err != nil {
		if errors.Is(err, types.ErrUnknownModel) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request, _ string) {
	var req struct {
		Model    string `json:"model"`
		Region   string `json:"region"`
		Country  string `json:"country"`
		Division string `json:"division"`
		Service  string `json:"service"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	prediction, err := s.prediction.Predict(entity.ModelKind(req.Model), req.Region, req.Country, req.Division, req.Service)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrModelNotTrained), errors.Is(err, types.ErrUnknownModel):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

// filterFromQuery reads the repeatable drill-down parameters. Absent or "ALL"
// values mean no filtering at that level.
func filterFromQuery(r *http.Request) entity.Filter {
	q := r.URL.Query()
	return entity.Filter{
		Regions:   selections(q["region"]),
		Countries: selections(q["country"]),
		Divisions: selections(q["division"]),
		Services:  selections(q["service"]),
	}
}

func selections(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || v == "ALL" {
			continue
		}
		cleaned = append(cleaned, v)
	}
	return cleaned
}
