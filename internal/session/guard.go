package session

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/questscholar/backend/internal/auth"
	"github.com/questscholar/backend/internal/models"
)

// Decision is the outcome of a route guard evaluation
type Decision int

// Guard decision constants
const (
	// DecisionLoading defers the decision until rehydration completes
	DecisionLoading Decision = iota
	// DecisionAllow renders the protected content
	DecisionAllow
	// DecisionRedirectLogin sends the visitor to the login page
	DecisionRedirectLogin
	// DecisionRedirectUnauthorized sends an authenticated user with the
	// wrong role to the unauthorized page
	DecisionRedirectUnauthorized
)

// String returns the decision name
func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "unknown"
	}
}

// Decide evaluates whether a navigation target may render.
//
// An empty required role set means any authenticated user is allowed.
// While the session is still loading the decision is deferred so a
// redirect never fires before rehydration completes.
func Decide(user *models.User, loading bool, requiredRoles []models.Role) Decision {
	if loading {
		return DecisionLoading
	}
	if user == nil {
		return DecisionRedirectLogin
	}
	if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, user.Role) {
		return DecisionRedirectUnauthorized
	}
	return DecisionAllow
}

type contextKey string

const userIDKey contextKey = "userID"

// GetUserID retrieves the authenticated user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// RequireRoles validates the JWT access token and applies the route
// guard decision to the request. An empty role list only requires a
// valid session.
func RequireRoles(tokenGenerator *auth.TokenGenerator, requiredRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header or cookie
			var token string

			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				// Expected format: "Bearer <token>"
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
					token = parts[1]
				}
			}

			if token == "" {
				cookie, err := r.Cookie("access_token")
				if err == nil {
					token = cookie.Value
				}
			}

			var user *models.User
			if token != "" {
				userID, role, err := tokenGenerator.ValidateAccessToken(token)
				if err == nil {
					user = &models.User{ID: userID, Role: models.Role(role)}
				}
			}

			switch Decide(user, false, requiredRoles) {
			case DecisionAllow:
				ctx := context.WithValue(r.Context(), userIDKey, user.ID)
				next.ServeHTTP(w, r.WithContext(ctx))
			case DecisionRedirectUnauthorized:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"insufficient permissions"}`))
			default:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
			}
		})
	}
}
