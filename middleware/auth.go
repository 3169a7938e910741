// Package middleware carries the anonymous session layer. There are no
// accounts: a client asks for a session token once and presents it on
// every profile-scoped request, which is enough to keep progress and
// achievements attributable without a signup flow.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

var (
	ErrNoToken      = errors.New("authorization token is missing")
	ErrInvalidToken = errors.New("authorization token is invalid")
)

const sessionTTL = 30 * 24 * time.Hour

// SessionAuth signs and verifies anonymous session tokens.
type SessionAuth struct {
	secret []byte
}

func NewSessionAuth(secret string) *SessionAuth {
	return &SessionAuth{secret: []byte(secret)}
}

type sessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueSession mints a token for a fresh anonymous user ID.
func (a *SessionAuth) IssueSession() (userID, token string, err error) {
	userID = uuid.NewString()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	return userID, token, err
}

// parse validates the token and returns the user ID.
func (a *SessionAuth) parse(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// Authenticate resolves a Bearer token into the request context. When no
// token is presented the request proceeds anonymously; profile-scoped
// handlers decide whether that is acceptable.
func (a *SessionAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := a.parse(tokenString)
		if err != nil {
			http.Error(w, "invalid session token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user ID.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", ErrNoToken
	}
	return userID, nil
}
