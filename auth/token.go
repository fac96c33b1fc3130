package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"esportshub/models"
)

// TokenTTL is the validity window of an issued token. There is no
// refresh mechanism and no server-side revocation; logout is advisory
// at the client.
const TokenTTL = 12 * time.Hour

const issuer = "esportshub"

// Identity is the verified subject extracted from a token.
type Identity struct {
	UserID int64           `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
}

// Claims is the JWT payload carried by every issued token.
type Claims struct {
	UserID int64           `json:"uid"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed identity assertions. It is
// stateless; the symmetric key is injected at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with the given
// symmetric secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs a token embedding the user's id, name, role and email.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", models.NewError(models.CodeStoreUnavailable, "failed to sign token: %v", err)
	}
	return signed, nil
}

// Verify checks a presented token and returns the identity it asserts.
// An absent token, an elapsed expiry and any other verification failure
// are reported with distinct reason codes.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, models.NewError(models.CodeMissingCredential, "no credential presented")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, models.NewError(models.CodeExpiredCredential, "credential has expired")
		}
		return nil, models.NewError(models.CodeInvalidCredential, "credential verification failed")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, models.NewError(models.CodeInvalidCredential, "credential verification failed")
	}

	return &Identity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
