package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	v1 "github.com/cyclonite69/shadowcheck-static-sub002/api/v1"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/handlers"
	srvErrors "github.com/cyclonite69/shadowcheck-static-sub002/pkg/errors"
)

const subjectKey = "subject"

// Authenticator issues and verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("auth secret is required when authentication is enabled")
	}
	return &Authenticator{secret: []byte(secret)}, nil
}

func (a *Authenticator) GenerateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the token subject or an UnauthorizedError.
func (a *Authenticator) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", srvErrors.NewUnauthorizedError(err.Error())
	}
	if !parsed.Valid {
		return "", srvErrors.NewUnauthorizedError("invalid token")
	}
	return claims.Subject, nil
}

func BearerAuth(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, srvErrors.NewUnauthorizedError("missing bearer token"))
			return
		}

		subject, err := a.Validate(token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(subjectKey, subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{Error: err.Error(), RequestID: handlers.RequestIDFrom(c)})
}
