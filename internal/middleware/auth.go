package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pattarin-dev/webboard/internal/domain"
	jwt_internal "github.com/pattarin-dev/webboard/internal/jwt"
	"github.com/pattarin-dev/webboard/internal/logger"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// Sentinel errors for extractUser
var (
	errNoToken      = errorString("no token")
	errInvalidToken = errorString("invalid token")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// extractUser validates the bearer token and returns the identity it binds.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, errNoToken
	}

	claims, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		logger.Log.Debug("token validation failed", "error", err)
		return nil, errInvalidToken
	}

	uidFloat, ok := claims["userId"].(float64)
	if !ok {
		return nil, errInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, errInvalidToken
	}

	return &domain.User{Id: int64(uidFloat), Username: username}, nil
}

// NeedAuth returns middleware that rejects requests without a valid bearer
// token: 401 when the token is absent, 403 when malformed, forged or
// expired. On success the claims become request-scoped identity.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					w.WriteHeader(http.StatusUnauthorized)
				default:
					w.WriteHeader(http.StatusForbidden)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the authenticated user, nil if absent.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
