package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dberzins/snippetflow/internal/common"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Disabled bool   `json:"disabled"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var in registerRequest
	defer req.Body.Close()
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	user, err := r.users.Register(req.Context(), in.Username, in.Email, in.Password, in.FullName, in.Disabled)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			// 400 rather than 409 to keep the wire contract of the
			// original API.
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		r.logger.Error(req.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	r.logger.Info(req.Context(), "user registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	username := req.PostFormValue("username")
	password := req.PostFormValue("password")

	token, err := r.users.Login(req.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		r.logger.Error(req.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// handleLogout confirms and does nothing: there is no server-side session to
// destroy, the client discards its token.
func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) {
	r.users.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (r *Router) handleMe(w http.ResponseWriter, req *http.Request) {
	token, err := bearerToken(req.Header.Get("Authorization"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := r.users.ResolveIdentity(req.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			r.logger.Error(req.Context(), "identity resolution failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}
