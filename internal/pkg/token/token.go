// Package token issues and verifies the HS256 access/refresh token pair.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

var (
	ErrMissing = errors.New("missing bearer token")
	ErrInvalid = errors.New("invalid token")
)

type Claims struct {
	Email string `json:"email"`
	// Role mirrors the admin flag at issue time. Display only.
	Role string `json:"role"`
	Kind Kind   `json:"typ"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewIssuer(secret, issuer string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth.jwtSecret must be at least 16 bytes")
	}
	return &Issuer{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

func (i *Issuer) sign(userID uuid.UUID, email, role string, kind Kind, ttl time.Duration) (string, error) {
	now := i.now()
	claims := Claims{
		Email: email,
		Role:  role,
		Kind:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *Issuer) Issue(userID uuid.UUID, email, role string) (*Pair, error) {
	access, err := i.sign(userID, email, role, Access, i.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := i.sign(userID, email, role, Refresh, i.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}
	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(i.accessTTL.Seconds()),
		TokenType:    "bearer",
	}, nil
}

// Parse verifies signature, issuer, expiry and kind.
func (i *Issuer) Parse(raw string, want Kind) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if claims.Kind != want {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalid, want)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalid)
	}
	return claims, nil
}

// ExtractBearer returns the token from an Authorization header value.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalid
	}
	return strings.TrimSpace(parts[1]), nil
}
