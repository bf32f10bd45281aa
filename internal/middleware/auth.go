// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
)

type contextKey string

const (
	ClaimsKey contextKey = "jwt_claims"
	TokenKey  contextKey = "jwt_raw"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
	RoleModo  = "Modo"
)

// TokenVerifier checks signature, expiry and revocation of a bearer token.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*AccessTokenClaims, error)
}

// AccessTokenClaims is the request-scoped principal.
type AccessTokenClaims struct {
	UserID   int64
	Roles    []string
	IssuedAt time.Time
	TokenID  string
}

func (c *AccessTokenClaims) HasAnyRole(roles ...string) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(w, core.AuthenticationError("missing authorization token"))
				return
			}

			claims, err := verifier.VerifyAccessToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			core.AnnotateUser(r.Context(), claims.UserID, claims.Roles)
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims, token)))
		})
	}
}

// RequireRole admits principals whose role set intersects roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())

			if claims == nil {
				core.JSONError(w, core.AuthenticationError("authentication required"))
				return
			}

			if !claims.HasAnyRole(roles...) {
				core.JSONError(w, core.AuthorizationError("insufficient permissions"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(RoleAdmin)(next)
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, core.TokenRevokedError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetClaims(ctx context.Context) *AccessTokenClaims {
	if claims, ok := ctx.Value(ClaimsKey).(*AccessTokenClaims); ok {
		return claims
	}
	return nil
}

func GetUserID(ctx context.Context) int64 {
	if claims := GetClaims(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetToken returns the raw bearer token the request was authenticated with.
func GetToken(ctx context.Context) string {
	if token, ok := ctx.Value(TokenKey).(string); ok {
		return token
	}
	return ""
}

// WithClaims returns ctx carrying claims, as Authenticator would.
func WithClaims(ctx context.Context, claims *AccessTokenClaims, token string) context.Context {
	ctx = context.WithValue(ctx, ClaimsKey, claims)
	return context.WithValue(ctx, TokenKey, token)
}
