package portal

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrBadToken covers expired, forged and malformed share links.
var ErrBadToken = errors.New("invalid share link")

// ShareLinkIssuer mints and verifies signed project share links. A link
// grants read access to exactly one project until it expires.
type ShareLinkIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewShareLinkIssuer(secret string, ttl time.Duration) *ShareLinkIssuer {
	return &ShareLinkIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a share token for the given project.
func (i *ShareLinkIssuer) Issue(projectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   projectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing share link: %w", err)
	}
	return signed, nil
}

// Verify returns the project id a token grants access to.
func (i *ShareLinkIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrBadToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrBadToken
	}
	return claims.Subject, nil
}
