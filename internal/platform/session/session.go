// Package session issues the signed visitor cookie that keys the
// per-visitor cart.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ridloal/pos-web-client/internal/platform/config"
	"github.com/ridloal/pos-web-client/internal/platform/format"
	"github.com/ridloal/pos-web-client/internal/platform/logger"
)

const contextKey = "pos_session_id"

var ErrInvalidToken = errors.New("invalid session token")

type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

func NewManager(cfg config.SessionConfig, secureCookie bool) *Manager {
	return &Manager{
		secret:     cfg.SecretKey,
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		secure:     secureCookie,
		now:        time.Now,
	}
}

// Issue signs a token carrying the session id.
func (m *Manager) Issue(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}
	return signed, nil
}

// Parse returns the session id of a valid, unexpired token.
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Middleware attaches a session id to every request, starting a new
// session when the cookie is missing, expired or tampered with. The cookie
// is re-issued on each request so active visitors keep their cart.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if raw, err := c.Cookie(m.cookieName); err == nil && raw != "" {
			if parsed, perr := m.Parse(raw); perr == nil {
				id = parsed
			} else {
				logger.Debug("Session cookie rejected, starting new session", "reason", perr.Error())
			}
		}
		if id == "" {
			id = format.GenerateID()
		}

		if signed, err := m.Issue(id); err == nil {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     m.cookieName,
				Value:    signed,
				Path:     "/",
				MaxAge:   int(m.ttl.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		} else {
			logger.Error("Session: failed to issue cookie", err)
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// ID returns the session id set by Middleware, or "" outside of it.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}
