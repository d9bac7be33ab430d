package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

type contextKey string

const claimsKey contextKey = "userClaims"

const CookieName = "jwt"

var ErrNoClaims = errors.New("no user claims in context")

// AuthMiddleware validates the session token from the jwt cookie or a
// bearer header and stores the claims in the request context. Requests
// without a valid session are rejected before reaching a handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenStr string

		if cookie, err := r.Cookie(CookieName); err == nil {
			tokenStr = cookie.Value
		}
		if tokenStr == "" {
			header := r.Header.Get("Authorization")
			if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// UserIDFromContext resolves the authenticated numeric user ID. A session
// whose subject is not numeric is treated as unauthenticated.
func UserIDFromContext(ctx context.Context) (uint, error) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, ErrNoClaims
	}
	return uint(id), nil
}

// WithClaims returns ctx carrying claims, for handler tests.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
