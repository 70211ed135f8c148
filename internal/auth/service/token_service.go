package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/nathangtg/jangular-auth/internal/auth/service TokenGenerator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/nathangtg/jangular-auth/internal/errors"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the payload of both token types. Access tokens carry the
// account id and role names; refresh tokens carry only the subject.
type TokenClaims struct {
	jwt.RegisteredClaims
	AccountID int64    `json:"account_id,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	TokenType string   `json:"typ"`
}

// Username is a pure projection over already-validated claims.
func (c *TokenClaims) Username() string { return c.Subject }

// Expiry is a pure projection over already-validated claims.
func (c *TokenClaims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

type TokenGenerator interface {
	IssueAccess(accountID int64, username string, roles []string, now time.Time) (string, error)
	IssueRefresh(username string, now time.Time) (string, error)
	Validate(tokenString, tokenType string, now time.Time) (*TokenClaims, error)
	ParseExpired(tokenString string, now time.Time) (*TokenClaims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}

// TokenService issues and validates HS256-signed tokens with a single shared
// secret. Issuance and validation are pure computations, safe for
// unsynchronized concurrent use.
type TokenService struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:          []byte(secret),
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
	}
}

func (ts *TokenService) IssueAccess(accountID int64, username string, roles []string, now time.Time) (string, error) {
	claims := TokenClaims{
		AccountID: accountID,
		Roles:     roles,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.accessTokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

func (ts *TokenService) IssueRefresh(username string, now time.Time) (string, error) {
	claims := TokenClaims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.refreshTokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Validate parses and verifies a token against now, requiring tokenType.
func (ts *TokenService) Validate(tokenString, tokenType string, now time.Time) (*TokenClaims, error) {
	claims, err := ts.parse(tokenString, now)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, autherror.ErrTokenUnsupported
	}

	return claims, nil
}

// ParseExpired verifies the signature of an access token but tolerates an
// elapsed expiry. Logout is best-effort cleanup and must still work on a
// token that expired after the session it opened.
func (ts *TokenService) ParseExpired(tokenString string, now time.Time) (*TokenClaims, error) {
	claims, err := ts.parse(tokenString, now, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, autherror.ErrTokenUnsupported
	}

	return claims, nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration  { return ts.accessTokenTTL }
func (ts *TokenService) RefreshTokenTTL() time.Duration { return ts.refreshTokenTTL }

func (ts *TokenService) parse(tokenString string, now time.Time, opts ...jwt.ParserOption) (*TokenClaims, error) {
	claims := &TokenClaims{}
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	}, opts...)
	if err != nil {
		return nil, mapTokenError(err)
	}

	return claims, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return autherror.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return autherror.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return autherror.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return autherror.ErrTokenUnsupported
	default:
		return autherror.ErrTokenMalformed
	}
}
