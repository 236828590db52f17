package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"cryptoshop/pkg/logger"
)

type ctxKey struct{}

// UserID возвращает идентификатор пользователя, положенный middleware.
// Пустая строка означает неаутентифицированный запрос.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// WithUserID кладет идентификатор пользователя в контекст.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// Middleware проверяет Bearer-токен (HS256) и кладет subject в контекст.
// Запросы без валидного токена дальше не проходят.
func Middleware(log handlerLogger, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := parseBearer(r.Header.Get("Authorization"), jwtSecret)
			if err != nil {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("unauthorized request")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				_, writeErr := w.Write([]byte(`{"error":"Unauthorized"}`))
				if writeErr != nil {
					log.With(
						logger.NewField("error", writeErr),
						logger.NewField("path", r.URL.Path),
					).Error("failed to write unauthorized response")
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func parseBearer(header, jwtSecret string) (string, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token without subject")
	}
	return subject, nil
}
