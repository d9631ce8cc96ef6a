package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-journal/internal/api/shared/errors"
	"github.com/feral-file/ff-journal/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
)

const (
	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds the operator authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Operator is the authenticated caller of an operator endpoint
type Operator struct {
	AuthType string
	Subject  string
}

// Authenticate resolves the operator behind an Authorization header.
// Accepted schemes are "Bearer <RS256 JWT>" and "ApiKey <key>".
func Authenticate(authHeader string, cfg AuthConfig) (*Operator, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := validateJWT(credentials, cfg.JWTPublicKey)
		if err != nil {
			return nil, err
		}
		return &Operator{AuthType: AUTH_TYPE_JWT, Subject: claims.Subject}, nil
	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			return nil, err
		}
		return &Operator{AuthType: AUTH_TYPE_APIKEY}, nil
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware guarding operator endpoints
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator, err := Authenticate(c.GetHeader("Authorization"), cfg)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(AUTH_TYPE_KEY), operator.AuthType)
		if operator.Subject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), operator.Subject)
		}

		c.Next()
	}
}

// validateJWT verifies an RS256 token against the configured public key
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT authentication is not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// parseRSAPublicKey parses a PEM encoded RSA public key
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	return jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
}

// validateAPIKey compares the key against every configured key in constant time
func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return nil
		}
	}

	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
