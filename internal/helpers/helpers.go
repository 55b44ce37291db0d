package helpers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joshua-takyi/hallbook/internal/models"
)

const TokenIssuer = "hallbook"

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenManager signs session tokens with an HMAC secret. When a JWKS is
// attached, asymmetric tokens from that identity provider are accepted too.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	jwks   *keyfunc.JWKS
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// UseJWKS fetches the key set once and keeps it refreshed in the background.
func (tm *TokenManager) UseJWKS(ctx context.Context, jwksURL string) error {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
	}
	tm.jwks = jwks
	return nil
}

func (tm *TokenManager) Close() {
	if tm.jwks != nil {
		tm.jwks.EndBackground()
	}
}

func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Issue signs a token for identity and returns it with its expiry.
func (tm *TokenManager) Issue(identity models.Identity) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role:     identity.Role,
		Username: identity.Username,
		Email:    identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    TokenIssuer,
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (tm *TokenManager) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, tm.keyfunc, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Provider tokens carry their own role vocabulary; only our admin role is trusted.
	if claims.Role != models.RoleAdmin {
		claims.Role = models.RoleUser
	}
	if claims.Username == "" {
		claims.Username = claims.Email
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	return claims, nil
}

func (tm *TokenManager) keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		return tm.secret, nil
	}
	if tm.jwks != nil {
		return tm.jwks.Keyfunc(token)
	}
	return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
}

// ImageURL resolves a venue image. Absolute URLs pass through; anything else
// is treated as a Cloudinary public id when a client is configured.
func ImageURL(cld *cloudinary.Cloudinary, image string) string {
	if cld == nil || image == "" || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	asset, err := cld.Image(image)
	if err != nil {
		return image
	}
	url, err := asset.String()
	if err != nil {
		return image
	}
	return url
}
