package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cybermcq/mcq-backend/internal/config"
	"github.com/cybermcq/mcq-backend/internal/response"
)

// ContextKeyClaims is the Gin context key for identity claims.
const ContextKeyClaims = "claims"

// GroupList normalizes the group-membership claim, which the token issuer
// may deliver either as a comma-separated string or as a list of strings.
// Any other shape decodes as no groups.
type GroupList []string

func (g *GroupList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*g = nil
			return nil
		}
		*g = strings.Split(s, ",")
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = list
		return nil
	}

	// Malformed claim shape: treated as "no groups", never an error.
	*g = nil
	return nil
}

// Contains reports whether the literal group value is present.
func (g GroupList) Contains(group string) bool {
	for _, v := range g {
		if v == group {
			return true
		}
	}
	return false
}

// Claims is the JWT claim set the identity provider issues.
type Claims struct {
	jwt.RegisteredClaims
	Groups GroupList `json:"cognito:groups"`
}

// ClaimsFromRequest parses the bearer token from the Authorization header.
// Returns nil on any failure: missing header, bad signature, expired token.
func ClaimsFromRequest(c *gin.Context, secret string) *Claims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}

	token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil
	}
	return claims
}

// IsAdmin reports whether the request carries the admin group membership.
func IsAdmin(c *gin.Context, cfg *config.Config) bool {
	claims := ClaimsFromRequest(c, cfg.JWTSecret)
	if claims == nil {
		return false
	}
	return claims.Groups.Contains(cfg.AdminGroup)
}

// RequireAdmin gates a route on admin group membership. Non-admin callers
// receive 404, deliberately indistinguishable from a missing resource.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromRequest(c, cfg.JWTSecret)
		if claims == nil || !claims.Groups.Contains(cfg.AdminGroup) {
			response.AbortError(c, http.StatusNotFound, response.MsgNotFound)
			return
		}
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}
