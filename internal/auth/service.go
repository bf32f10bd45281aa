// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/carterperez-dev/tierhub/internal/core"
	"github.com/carterperez-dev/tierhub/internal/middleware"
)

type UserProvider interface {
	GetByIdentifier(ctx context.Context, identifier string) (*UserInfo, error)
	GetCredentialsByID(ctx context.Context, id int64) (*UserInfo, error)
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	CreateAccount(ctx context.Context, u NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastConnection(ctx context.Context, id int64, at time.Time) error
}

type RoleProvider interface {
	RoleLabelsForUser(ctx context.Context, userID int64) ([]string, error)
	AssignDefaultRole(ctx context.Context, userID int64) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type DomainChecker interface {
	HasMX(ctx context.Context, domain string) (bool, error)
}

type ServiceConfig struct {
	JWT         *JWTManager
	Users       UserProvider
	Roles       RoleProvider
	Revocations *Revocations
	Mailer      Mailer
	Domains     DomainChecker
	FrontendURL string
	Logger      *slog.Logger
	Now         func() time.Time
}

type Service struct {
	jwt         *JWTManager
	users       UserProvider
	roles       RoleProvider
	revocations *Revocations
	mailer      Mailer
	domains     DomainChecker
	frontendURL string
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		jwt:         cfg.JWT,
		users:       cfg.Users,
		roles:       cfg.Roles,
		revocations: cfg.Revocations,
		mailer:      cfg.Mailer,
		domains:     cfg.Domains,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		logger:      cfg.Logger,
		now:         cfg.Now,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	identifier := req.LoginIdentifier()
	if identifier == "" {
		return nil, core.BadRequestError("identifier is required")
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, core.AuthenticationError("invalid credentials")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return nil, core.AuthenticationError("invalid credentials")
	}

	if err := checkStatus(user.Status); err != nil {
		return nil, err
	}

	if core.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := core.HashPassword(req.Password); hashErr == nil {
			//nolint:errcheck // best-effort rehash upgrade
			_ = s.users.UpdatePassword(ctx, user.ID, newHash)
		}
	}

	now := s.now()
	if err := s.users.TouchLastConnection(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("touch last connection: %w", err)
	}
	user.LastConnection = now

	roles, err := s.roles.RoleLabelsForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	token, err := s.jwt.CreateAccessToken(user.ID, roles)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &LoginResult{
		Token:   token,
		Account: ToAccountResponse(user, roles),
	}, nil
}

// Register creates an active account and grants it the default role.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateAccount(ctx, NewUser{
		Username:       strings.TrimSpace(req.Username),
		Nametag:        req.Nametag,
		Email:          strings.ToLower(req.Email),
		PasswordHash:   passwordHash,
		Status:         StatusActive,
		LastConnection: s.now(),
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.DuplicateError("nametag or email")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.roles.AssignDefaultRole(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("assign default role: %w", err)
	}

	roles, err := s.roles.RoleLabelsForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}

	resp := ToAccountResponse(user, roles)
	return &resp, nil
}

// Revoke invalidates every token issued to userID before now.
func (s *Service) Revoke(ctx context.Context, userID int64) error {
	if err := s.revocations.Record(ctx, userID, s.now()); err != nil {
		return fmt.Errorf("revoke: %w", err)
	}
	return nil
}

// UpdatePassword checks the old password, stores the new one and revokes
// the caller's tokens so they must sign in again.
func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	req NewPasswordRequest,
) error {
	user, err := s.users.GetCredentialsByID(ctx, userID)
	if err != nil {
		return err
	}

	valid, err := core.VerifyPassword(req.OldPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !valid {
		return core.BadRequestError("old password is incorrect")
	}

	if err := s.setPassword(ctx, userID, req.NewPassword); err != nil {
		return err
	}

	return s.Revoke(ctx, userID)
}

// VerifyAccessToken implements middleware.TokenVerifier.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	if err := s.checkRevocation(ctx, claims.UserID, claims.IssuedAt); err != nil {
		return nil, err
	}

	// status is read on every request so a ban applies to tokens already issued
	user, err := s.users.GetCredentialsByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("verify token: unknown subject: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	if err := checkStatus(user.Status); err != nil {
		return nil, err
	}

	return claims, nil
}

func checkStatus(status string) error {
	switch status {
	case StatusBanned:
		return core.AuthorizationError("account is banned")
	case StatusDeactivated:
		return core.AuthorizationError("account is deactivated")
	}
	return nil
}

func (s *Service) checkRevocation(ctx context.Context, userID int64, issuedAt time.Time) error {
	latest, found, err := s.revocations.Latest(ctx, userID)
	if err != nil {
		return fmt.Errorf("check revocation: %w", err)
	}

	if IsRevoked(latest, found, issuedAt) {
		return fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return nil
}

// ForgotPassword mails a reset link when the address belongs to an account.
// Unknown addresses succeed silently so accounts cannot be enumerated.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return core.BadRequestError("email is invalid")
	}

	hasMX, err := s.domains.HasMX(ctx, domain)
	if err != nil {
		return fmt.Errorf("lookup mx: %w", err)
	}
	if !hasMX {
		return core.BadRequestError("email domain does not accept mail")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	token, err := s.jwt.CreateResetToken(user.ID)
	if err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	link := s.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
	body := fmt.Sprintf(
		"Hello %s,\n\nUse the link below to choose a new password. It expires in %s.\n\n%s\n\nIf you did not ask for this, ignore this email.\n",
		user.Username,
		ResetTokenTTL,
		link,
	)

	if err := s.mailer.Send(ctx, user.Email, "TierHub password reset", body); err != nil {
		s.logger.ErrorContext(ctx, "send reset email failed",
			"user_id", user.ID,
			"error", err,
		)
		return core.SendingEmailError("reset email could not be sent")
	}

	return nil
}

// ResetPassword consumes a reset token. Recording a revocation afterwards
// makes the same token unusable a second time.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	userID, issuedAt, err := s.jwt.VerifyResetToken(req.Token)
	if err != nil {
		return err
	}

	if err := s.checkRevocation(ctx, userID, issuedAt); err != nil {
		return err
	}

	if err := s.setPassword(ctx, userID, req.NewPassword); err != nil {
		return err
	}

	return s.Revoke(ctx, userID)
}

func (s *Service) setPassword(ctx context.Context, userID int64, password string) error {
	hash, err := core.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

var _ middleware.TokenVerifier = (*Service)(nil)
