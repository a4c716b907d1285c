package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/questscholar/backend/internal/auth"
	"github.com/questscholar/backend/internal/session"
	"go.uber.org/zap"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	store          *session.Store
	tokenGenerator *auth.TokenGenerator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	store *session.Store,
	tokenGenerator *auth.TokenGenerator,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		store:          store,
		tokenGenerator: tokenGenerator,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/session", h.Session)
	})
}

// Login handles POST /auth/login
// @Summary Log in with demo credentials
// @Description Authenticate against the two fixed demo accounts. On success the user is persisted as the current session and an access token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.store.Login(r.Context(), req.Email, req.Password) {
		h.RespondError(w, http.StatusUnauthorized, h.store.Err())
		return
	}

	user := h.store.Current()

	accessToken, err := h.tokenGenerator.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		h.Logger.Error("failed to generate access token", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to create session token")
		return
	}

	h.setTokenCookie(w, accessToken)
	h.RespondJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Clear the current session and expire the access token cookie. Idempotent.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()

	// Expire the access token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Session handles GET /auth/session
// @Summary Get the current session
// @Description Return the currently authenticated user, rehydrated from durable storage at startup.
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "No active session"
// @Router /auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.store.Current()
	if user == nil {
		h.RespondError(w, http.StatusUnauthorized, "no active session")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// setTokenCookie sets the access token as an HTTP-only cookie
func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   3600, // 1 hour
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
