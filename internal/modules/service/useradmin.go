package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

// ManagedUser is an identity joined with its profile and role, as seen by admins.
type ManagedUser struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	Restricted bool      `json:"restricted,omitempty"`
}

// UserAdminService backs the privileged user functions. Every call re-verifies the
// caller against the database and ignores whatever the token claims.
type UserAdminService interface {
	ListUsers(ctx context.Context) ([]ManagedUser, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userAdminService struct {
	users    repo.UserRepo
	profiles repo.ProfileRepo
	roles    repo.RoleRepo
	log      *zap.Logger
}

func NewUserAdminService(users repo.UserRepo, profiles repo.ProfileRepo, roles repo.RoleRepo, log *zap.Logger) UserAdminService {
	return &userAdminService{users: users, profiles: profiles, roles: roles, log: log}
}

// verifyAdmin returns a service context for a caller that is a live identity holding admin.
func (s *userAdminService) verifyAdmin(ctx context.Context) (context.Context, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	svc := policy.AsService(ctx)
	if _, err := s.users.GetByID(svc, uid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, err
	}
	ok, err := s.roles.HasRole(svc, uid, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAdminRequired
	}
	return svc, nil
}

func (s *userAdminService) ListUsers(ctx context.Context) ([]ManagedUser, error) {
	svc, err := s.verifyAdmin(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(svc)
	if err != nil {
		return nil, err
	}
	profiles, err := s.profiles.List(svc)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.List(svc)
	if err != nil {
		return nil, err
	}
	return MergeUsers(users, profiles, roles), nil
}

func (s *userAdminService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return invalid("userId", "must be a UUID")
	}
	svc, err := s.verifyAdmin(ctx)
	if err != nil {
		return err
	}
	if err := s.users.Delete(svc, id); err != nil {
		return err
	}
	caller, _ := actor(ctx)
	s.log.Info("user deleted", zap.String("user_id", id.String()), zap.String("by", caller.String()))
	return nil
}

// MergeUsers joins identities with profiles and roles. Missing names default to "User",
// missing roles to "member", and the profile creation time wins over the identity's.
func MergeUsers(users []model.AuthUser, profiles []model.Profile, roles []model.UserRole) []ManagedUser {
	byProfile := make(map[uuid.UUID]model.Profile, len(profiles))
	for _, p := range profiles {
		byProfile[p.ID] = p
	}
	byRole := make(map[uuid.UUID]model.AppRole, len(roles))
	for _, r := range roles {
		byRole[r.UserID] = r.Role
	}

	out := make([]ManagedUser, 0, len(users))
	for _, u := range users {
		m := ManagedUser{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  "User",
			Role:      string(model.RoleMember),
			CreatedAt: u.CreatedAt,
		}
		if m.Email == "" {
			m.Email = "N/A"
		}
		if p, ok := byProfile[u.ID]; ok {
			m.FullName = p.DisplayName("User")
			m.CreatedAt = p.CreatedAt
		}
		if r, ok := byRole[u.ID]; ok {
			m.Role = string(r)
		}
		out = append(out, m)
	}
	return out
}
