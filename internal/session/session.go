package session

import (
	"errors"
	"net/http"
	"time"

	"jobportal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie carrying the signed claims.
const CookieName = "jobportal_session"

var ErrNoSession = errors.New("no active session")

// Claims is what a login records: the username and the role.
type Claims struct {
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed session token for the given user.
func (m *Manager) Issue(username string, role models.UserRole) (string, error) {
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a session token and returns its claims.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNoSession
	}
	return claims, nil
}

// Establish writes the session cookie for the user.
func (m *Manager) Establish(c *gin.Context, username string, role models.UserRole) error {
	token, err := m.Issue(username, role)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Clear removes the session cookie unconditionally.
func (m *Manager) Clear(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// Current returns the session claims for the request, or ErrNoSession.
func (m *Manager) Current(c *gin.Context) (*Claims, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == "" {
		return nil, ErrNoSession
	}
	return m.Parse(cookie)
}
