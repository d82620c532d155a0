package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"teampoints/internal/http/api"
	"teampoints/internal/service/access"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the Bearer token and injects the caller's identity into
// the request context. Role checks are not done here: the access gate in
// the service layer owns the admin predicate.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")

			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrBadRequest, "authorization required"))
				return
			}

			tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

			identity, ok := validateToken(tokenString, secret)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrBadRequest, "invalid token"))
				return
			}

			ctx := access.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(tokenString, secret string) (access.Identity, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return access.Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return access.Identity{}, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return access.Identity{}, false
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return access.Identity{}, false
	}

	role, ok := claims["role"].(string)
	if !ok {
		return access.Identity{}, false
	}

	return access.Identity{UserID: userID, Role: role}, true
}
