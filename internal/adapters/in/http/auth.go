package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/workflow"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// Claims carried by the bearer token. Subject is the user id.
type Claims struct {
	Role        string `json:"role"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Actor builds the workflow actor named by the claims.
func (c Claims) Actor() (workflow.Actor, error) {
	id, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("subject: %w", err)
	}
	role, err := workflow.ParseRole(c.Role)
	if err != nil {
		return workflow.Actor{}, err
	}

	var warehouseID *kernel.UUID
	if c.WarehouseID != "" {
		wid, err := kernel.UUIDFromString(c.WarehouseID)
		if err != nil {
			return workflow.Actor{}, fmt.Errorf("warehouse_id: %w", err)
		}
		warehouseID = &wid
	}
	return workflow.NewActor(id, role, c.Email, warehouseID)
}

// Authenticate verifies the HS256 bearer token and stores the actor on the
// echo context. Requests without a valid token get 401.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, keyFunc); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}
			actor, err := claims.Actor()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims").SetInternal(err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (workflow.Actor, error) {
	actor, ok := c.Get(actorContextKey).(workflow.Actor)
	if !ok {
		return workflow.Actor{}, errors.New("request has no authenticated actor")
	}
	return actor, nil
}
