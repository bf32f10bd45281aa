// AngelaMos | 2026
// jwt.go

package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/tierhub/internal/config"
	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/middleware"
)

const (
	tokenTypeAccess = "access"
	tokenTypeReset  = "reset"

	// ResetTokenTTL is fixed regardless of the access token expiry.
	ResetTokenTTL = time.Hour

	claimType    = "type"
	claimRoles   = "roles"
	claimIssued  = "iat_us"
	defaultLabel = "HS256"
)

type JWTManager struct {
	alg        jwa.SignatureAlgorithm
	signKey    jwk.Key
	verifyKey  jwk.Key
	publicJWKS jwk.Set
	config     config.JWTConfig
	now        func() time.Time
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	name := strings.ToUpper(cfg.Algorithm)
	if name == "" {
		name = defaultLabel
	}

	m := &JWTManager{
		config:     cfg,
		publicJWKS: jwk.NewSet(),
		now:        time.Now,
	}

	switch name {
	case "HS256", "HS384", "HS512":
		if err := m.loadSecret(name, cfg.Secret); err != nil {
			return nil, err
		}
	case "ES256":
		if err := m.loadECKey(cfg.PrivateKeyPath); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	return m, nil
}

func (m *JWTManager) loadSecret(name, secret string) error {
	if secret == "" {
		return fmt.Errorf("jwt secret is empty")
	}

	key, err := jwk.Import([]byte(secret))
	if err != nil {
		return fmt.Errorf("import secret: %w", err)
	}

	switch name {
	case "HS384":
		m.alg = jwa.HS384()
	case "HS512":
		m.alg = jwa.HS512()
	default:
		m.alg = jwa.HS256()
	}

	m.signKey = key
	m.verifyKey = key
	return nil
}

func (m *JWTManager) loadECKey(privateKeyPath string) error {
	privateKeyPEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}

	privateKey, err := jwk.ParseKey(privateKeyPEM, jwk.WithPEM(true))
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}

	if setErr := privateKey.Set(jwk.AlgorithmKey, jwa.ES256()); setErr != nil {
		return fmt.Errorf("set algorithm: %w", setErr)
	}

	keyID := uuid.New().String()[:8]
	if setErr := privateKey.Set(jwk.KeyIDKey, keyID); setErr != nil {
		return fmt.Errorf("set key id: %w", setErr)
	}

	publicKey, err := privateKey.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	if setErr := publicKey.Set(jwk.KeyUsageKey, "sig"); setErr != nil {
		return fmt.Errorf("set key usage: %w", setErr)
	}

	if addErr := m.publicJWKS.AddKey(publicKey); addErr != nil {
		return fmt.Errorf("add key to set: %w", addErr)
	}

	m.alg = jwa.ES256()
	m.signKey = privateKey
	m.verifyKey = publicKey
	return nil
}

// GenerateKeyPair writes a fresh P-256 key pair as PEM for ES256 signing.
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	jwkPrivate, err := jwk.Import(privateKey)
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}

	privatePEM, err := jwk.Pem(jwkPrivate)
	if err != nil {
		return fmt.Errorf("encode private key: %w", err)
	}

	if writeErr := os.WriteFile(privateKeyPath, privatePEM, 0o600); writeErr != nil {
		return fmt.Errorf("write private key: %w", writeErr)
	}

	jwkPublic, err := jwkPrivate.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	publicPEM, err := jwk.Pem(jwkPublic)
	if err != nil {
		return fmt.Errorf("encode public key: %w", err)
	}

	//nolint:gosec // G306: public key is intentionally world-readable
	if writeErr := os.WriteFile(publicKeyPath, publicPEM, 0o644); writeErr != nil {
		return fmt.Errorf("write public key: %w", writeErr)
	}

	return nil
}

// CreateAccessToken signs a bearer token for userID carrying roles.
func (m *JWTManager) CreateAccessToken(userID int64, roles []string) (string, error) {
	now := m.now()
	if roles == nil {
		roles = []string{}
	}

	token, err := m.baseBuilder(userID, now).
		Expiration(now.Add(m.config.AccessTokenExpire)).
		Claim(claimRoles, roles).
		Claim(claimType, tokenTypeAccess).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	return m.sign(token)
}

// CreateResetToken signs a one hour token without roles for password reset.
func (m *JWTManager) CreateResetToken(userID int64) (string, error) {
	now := m.now()

	token, err := m.baseBuilder(userID, now).
		Expiration(now.Add(ResetTokenTTL)).
		Claim(claimType, tokenTypeReset).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	return m.sign(token)
}

func (m *JWTManager) baseBuilder(userID int64, now time.Time) *jwt.Builder {
	return jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		NotBefore(now).
		Claim(claimIssued, now.UnixMicro())
}

func (m *JWTManager) sign(token jwt.Token) (string, error) {
	signed, err := jwt.Sign(token, jwt.WithKey(m.alg, m.signKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

// VerifyToken checks signature and expiry of an access token and returns its
// claims. Revocation is checked by the service.
func (m *JWTManager) VerifyToken(tokenString string) (*middleware.AccessTokenClaims, error) {
	token, err := m.parse(tokenString, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	claims, err := m.baseClaims(token)
	if err != nil {
		return nil, err
	}

	var rawRoles []any
	if err := token.Get(claimRoles, &rawRoles); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing roles claim: %w",
			core.ErrTokenInvalid,
		)
	}

	claims.Roles = make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		if s, ok := r.(string); ok {
			claims.Roles = append(claims.Roles, s)
		}
	}

	return claims, nil
}

// VerifyResetToken checks a password reset token and returns its subject
// and issue time.
func (m *JWTManager) VerifyResetToken(tokenString string) (int64, time.Time, error) {
	token, err := m.parse(tokenString, tokenTypeReset)
	if err != nil {
		return 0, time.Time{}, err
	}

	claims, err := m.baseClaims(token)
	if err != nil {
		return 0, time.Time{}, err
	}

	return claims.UserID, claims.IssuedAt, nil
}

func (m *JWTManager) parse(tokenString, wantType string) (jwt.Token, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(m.alg, m.verifyKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
		jwt.WithClock(jwt.ClockFunc(m.now)),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var tokenType string
	if err := token.Get(claimType, &tokenType); err != nil || tokenType != wantType {
		return nil, fmt.Errorf(
			"verify token: invalid token type: %w",
			core.ErrTokenInvalid,
		)
	}

	return token, nil
}

func (m *JWTManager) baseClaims(token jwt.Token) (*middleware.AccessTokenClaims, error) {
	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf("verify token: missing subject: %w", core.ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("verify token: bad subject: %w", core.ErrTokenInvalid)
	}

	issuedAt, ok := token.IssuedAt()
	if !ok {
		return nil, fmt.Errorf("verify token: missing iat: %w", core.ErrTokenInvalid)
	}

	// postgres keeps revocations at microsecond precision, so iat is matched to it
	var issuedMicros float64
	if err := token.Get(claimIssued, &issuedMicros); err == nil {
		issuedAt = time.UnixMicro(int64(issuedMicros))
	}

	var jti string
	if id, ok := token.JwtID(); ok {
		jti = id
	}

	return &middleware.AccessTokenClaims{
		UserID:   userID,
		IssuedAt: issuedAt,
		TokenID:  jti,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

// GetJWKSHandler publishes the verification key set. Symmetric algorithms
// publish an empty set.
func (m *JWTManager) GetJWKSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if err := json.NewEncoder(w).Encode(m.publicJWKS); err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
}

func (m *JWTManager) Algorithm() string {
	return m.alg.String()
}

// SetClock replaces the time source used for issuing and validating tokens.
func (m *JWTManager) SetClock(now func() time.Time) {
	m.now = now
}
