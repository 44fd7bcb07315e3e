package auth

import (
	"errors"
	"net/http"

	"diatrack.example/go-diatrack/pkg/httpx"
	"diatrack.example/go-diatrack/pkg/logger"
)

type AuthHandler struct {
	authService *AuthService
	log         logger.Logger
}

func NewAuthHandler(authService *AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token handles POST /token. Credentials arrive form-encoded, matching the
// OAuth2 password flow the original clients speak.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.log.Error(r.Context(), "login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
