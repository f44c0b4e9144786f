package middlewares

import (
	"net/http"
	"strings"

	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

// Authentication validates the bearer token and places the caller identity
// in the request context. Everything below the HTTP layer receives the
// caller as an explicit parameter.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		caller, err := m.parseCaller(tokenString)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithCaller(r.Context(), caller)))
	})
}

func (m *Middlewares) parseCaller(tokenString string) (models.Caller, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.InternalConfig.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return models.Caller{}, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Caller{}, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		email, _ = claims["sub"].(string)
	}
	if email == "" {
		return models.Caller{}, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	var roles []string
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, rawRole := range rawRoles {
			if role, ok := rawRole.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return models.Caller{Email: email, Roles: roles}, nil
}
