package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/founderflow/founderflow/internal/infra/cache"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/token"
	"github.com/founderflow/founderflow/internal/pkg/utils"
)

const (
	minPasswordLen = 6
	// bcrypt only hashes the first 72 bytes.
	maxPasswordLen = 72
)

var validate = validator.New()

type AuthOptions struct {
	EnableSignup bool
	ResetTTL     time.Duration
	// ResetLinkBase is the page that consumes reset tokens, e.g. https://app.example.com/reset-password.
	ResetLinkBase string
}

// AuthResult is a token pair plus the session it describes.
type AuthResult struct {
	token.Pair
	Session Session `json:"session"`
}

type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	// SignOut revokes the session's access token and, when given, its refresh token.
	SignOut(ctx context.Context, s *Session, refreshToken string) error
	// Authenticate checks an access token: signature, expiry, revocation and that the
	// identity still exists.
	Authenticate(ctx context.Context, raw string) (*Session, error)
	// Session re-resolves the admin flag for s.
	Session(ctx context.Context, s *Session) *Session
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}

type authService struct {
	users   repo.UserRepo
	roles   repo.RoleRepo
	issuer  *token.Issuer
	revoked cache.RevocationStore
	reset   ResetEmailService
	opts    AuthOptions
	log     *zap.Logger
	now     func() time.Time
}

func NewAuthService(users repo.UserRepo, roles repo.RoleRepo, issuer *token.Issuer, revoked cache.RevocationStore, reset ResetEmailService, opts AuthOptions, log *zap.Logger) AuthService {
	return &authService{
		users:   users,
		roles:   roles,
		issuer:  issuer,
		revoked: revoked,
		reset:   reset,
		opts:    opts,
		log:     log,
		now:     time.Now,
	}
}

func normalizeEmail(field, s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", invalid(field, "is required")
	}
	if err := validate.Var(s, "required,email"); err != nil {
		return "", invalid(field, "must be a valid email address")
	}
	return s, nil
}

func checkPassword(field, s string) error {
	if len(s) < minPasswordLen {
		return invalid(field, fmt.Sprintf("must be at least %d characters", minPasswordLen))
	}
	if len(s) > maxPasswordLen {
		return invalid(field, fmt.Sprintf("must be at most %d bytes", maxPasswordLen))
	}
	return nil
}

func hashPassword(s string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// isAdmin resolves the role, treating a failed lookup as member.
func (s *authService) isAdmin(ctx context.Context, uid uuid.UUID) bool {
	ok, err := s.roles.HasRole(ctx, uid, model.RoleAdmin)
	if err != nil {
		s.log.Warn("role lookup failed, treating as member", zap.String("user_id", uid.String()), zap.Error(err))
		return false
	}
	return ok
}

func (s *authService) issue(ctx context.Context, u *model.AuthUser) (*AuthResult, error) {
	admin := s.isAdmin(ctx, u.ID)
	role := string(model.RoleMember)
	if admin {
		role = string(model.RoleAdmin)
	}
	pair, err := s.issuer.Issue(u.ID, u.Email, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Pair:    *pair,
		Session: Session{User: SessionUser{ID: u.ID, Email: u.Email}, IsAdmin: admin},
	}, nil
}

func (s *authService) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	if !s.opts.EnableSignup {
		return nil, ErrSignupDisabled
	}
	email, err := normalizeEmail("email", in.Email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword("password", in.Password); err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = strings.SplitN(email, "@", 2)[0]
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &model.AuthUser{Email: email, PasswordHash: hash}
	if err := s.users.Create(policy.AsService(ctx), u, fullName, model.RoleMember); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, invalid("email", "is already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user signed up", zap.String("user_id", u.ID.String()))
	return s.issue(ctx, u)
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := normalizeEmail("email", email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, invalid("password", "is required")
	}
	u, err := s.users.GetByEmail(policy.AsService(ctx), email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

// verify parses raw as a token of the given kind and loads its identity.
func (s *authService) verify(ctx context.Context, raw string, kind token.Kind) (*token.Claims, *model.AuthUser, error) {
	claims, err := s.issuer.Parse(raw, kind)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, nil, fmt.Errorf("%w: token revoked", ErrSessionInvalid)
	}
	uid, _ := claims.UserID()
	u, err := s.users.GetByID(policy.AsService(ctx), uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: identity no longer exists", ErrSessionInvalid)
		}
		return nil, nil, err
	}
	return claims, u, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, invalid("refresh_token", "is required")
	}
	claims, u, err := s.verify(ctx, refreshToken, token.Refresh)
	if err != nil {
		return nil, err
	}
	// refresh tokens rotate
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}
	return s.issue(ctx, u)
}

func (s *authService) SignOut(ctx context.Context, sess *Session, refreshToken string) error {
	if err := s.revoked.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return fmt.Errorf("revoke access token: %w", err)
	}
	if refreshToken == "" {
		return nil
	}
	claims, err := s.issuer.Parse(refreshToken, token.Refresh)
	if err != nil {
		return nil
	}
	if sub, _ := claims.UserID(); sub != sess.User.ID {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *authService) Authenticate(ctx context.Context, raw string) (*Session, error) {
	claims, u, err := s.verify(ctx, raw, token.Access)
	if err != nil {
		return nil, err
	}
	return &Session{
		User:      SessionUser{ID: u.ID, Email: u.Email},
		IsAdmin:   claims.Role == string(model.RoleAdmin),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Session(ctx context.Context, sess *Session) *Session {
	out := *sess
	out.IsAdmin = s.isAdmin(ctx, sess.User.ID)
	out.Loading = false
	return &out
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email, err := normalizeEmail("email", email)
	if err != nil {
		return err
	}
	svc := policy.AsService(ctx)
	u, err := s.users.GetByEmail(svc, email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.Error("forgot password lookup failed", zap.Error(err))
		}
		return nil
	}

	raw, err := utils.GenerateKey("")
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	now := s.now()
	if err := s.users.CreateResetToken(svc, &model.PasswordResetToken{
		UserID:    u.ID,
		TokenHash: utils.HashKey(raw),
		ExpiresAt: now.Add(s.opts.ResetTTL),
		CreatedAt: now,
	}, now); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := s.opts.ResetLinkBase + "?token=" + url.QueryEscape(raw)
	if _, err := s.reset.Send(ctx, u.Email, link); err != nil {
		s.log.Error("send reset email failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if strings.TrimSpace(rawToken) == "" {
		return invalid("token", "is required")
	}
	if err := checkPassword("new_password", newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	uid, err := s.users.ResetPassword(policy.AsService(ctx), utils.HashKey(strings.TrimSpace(rawToken)), hash, s.now())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return invalid("token", "is invalid or expired")
		}
		return err
	}
	s.log.Info("password reset", zap.String("user_id", uid.String()))
	return nil
}
