package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// Auth validates the JWT issued by the identity provider and injects the
// identity claims into context. When the user already has a row, it is
// loaded so downstream middleware can check role and active flag without
// a second query; deactivated users are rejected here.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set("user_id", sub)
			c.Set("email", str(claims["email"]))
			c.Set("first_name", str(claims["first_name"]))
			c.Set("last_name", str(claims["last_name"]))
			c.Set("profile_image_url", str(claims["profile_image_url"]))

			u, err := users.Get(c.Request().Context(), sub)
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				// First login: the row is created by GET /api/auth/user.
			case err != nil:
				return err
			case !u.IsActive:
				return echo.NewHTTPError(http.StatusUnauthorized, "account deactivated")
			default:
				c.Set("user", u)
			}

			return next(c)
		}
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
