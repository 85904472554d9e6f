package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawprint/animals-api/internal/core/ports"
)

// Auth validates the bearer token and injects claims into context. A token is
// accepted only when its signature verifies AND its jti is still present in
// the token store, so logged-out tokens are rejected before expiry.
//
// Injected keys: user_id (int64), username (string), is_admin (bool),
// token_id (string).
func Auth(jwtSecret string, tokens ports.TokenStore) echo.MiddlewareFunc {
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

			tokenID, _ := claims["jti"].(string)
			if tokenID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			active, err := tokens.Exists(c.Request().Context(), tokenID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "token verification failed")
			}
			if !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked or expired")
			}

			sub, _ := claims["sub"].(string)
			userID, err := strconv.ParseInt(sub, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			isAdmin, _ := claims["is_admin"].(bool)

			c.Set("user_id", userID)
			c.Set("username", claims["username"])
			c.Set("is_admin", isAdmin)
			c.Set("token_id", tokenID)

			return next(c)
		}
	}
}
