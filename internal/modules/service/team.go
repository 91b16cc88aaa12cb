package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

const rolesTable = "user_roles"

// TeamView lists members. Restricted is set when emails could not be fetched with
// privilege and are shown as "Hidden".
type TeamView struct {
	Members    []ManagedUser `json:"members"`
	Restricted bool          `json:"restricted"`
}

type InviteInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type TeamService interface {
	List(ctx context.Context) (*TeamView, error)
	Invite(ctx context.Context, in InviteInput) (*ManagedUser, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, role string) error
	Remove(ctx context.Context, userID uuid.UUID) error
}

type teamService struct {
	admin       UserAdminService
	users       repo.UserRepo
	profiles    repo.ProfileRepo
	roles       repo.RoleRepo
	access      Authorizer
	invitations InvitationDispatcher
	log         *zap.Logger
}

func NewTeamService(admin UserAdminService, users repo.UserRepo, profiles repo.ProfileRepo, roles repo.RoleRepo,
	access Authorizer, invitations InvitationDispatcher, log *zap.Logger) TeamService {
	return &teamService{
		admin:       admin,
		users:       users,
		profiles:    profiles,
		roles:       roles,
		access:      access,
		invitations: invitations,
		log:         log,
	}
}

func parseRole(s string) (model.AppRole, error) {
	if s == "" {
		return model.RoleMember, nil
	}
	r := model.AppRole(s)
	if !r.Valid() {
		return "", invalid("role", "must be admin or member")
	}
	return r, nil
}

func (s *teamService) List(ctx context.Context) (*TeamView, error) {
	if _, err := actor(ctx); err != nil {
		return nil, err
	}
	if !s.access.IsAdmin(ctx) {
		return nil, policy.ErrDenied
	}

	members, err := s.admin.ListUsers(ctx)
	if err == nil {
		return &TeamView{Members: members}, nil
	}
	if !errors.Is(err, ErrAdminRequired) {
		return nil, err
	}

	s.log.Warn("privileged member list refused, falling back to restricted view")
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]model.AuthUser, len(profiles))
	for i, p := range profiles {
		users[i] = model.AuthUser{ID: p.ID, Email: "Hidden", CreatedAt: p.CreatedAt}
	}
	members = MergeUsers(users, profiles, roles)
	for i := range members {
		members[i].Restricted = true
	}
	return &TeamView{Members: members, Restricted: true}, nil
}

func (s *teamService) Invite(ctx context.Context, in InviteInput) (*ManagedUser, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := prepareIdentity(in)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, rolesTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	out, err := createIdentity(ctx, s.users, id)
	if err != nil {
		return nil, err
	}

	inv := Invitation{Email: out.Email, FullName: out.FullName, Role: out.Role}
	if err := s.invitations.Dispatch(ctx, inv); err != nil {
		s.log.Error("dispatch invitation failed", zap.String("user_id", out.ID.String()), zap.Error(err))
	}
	s.log.Info("team member invited", zap.String("user_id", out.ID.String()), zap.String("role", out.Role))
	return out, nil
}

// ProvisionUser creates an identity with its profile and role without an acting user.
// Operator tooling uses it to seed the first admin.
func ProvisionUser(ctx context.Context, users repo.UserRepo, in InviteInput) (*ManagedUser, error) {
	id, err := prepareIdentity(in)
	if err != nil {
		return nil, err
	}
	return createIdentity(ctx, users, id)
}

type newIdentity struct {
	user     *model.AuthUser
	fullName string
	role     model.AppRole
}

func prepareIdentity(in InviteInput) (*newIdentity, error) {
	email, err := normalizeEmail("email", in.Email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword("password", in.Password); err != nil {
		return nil, err
	}
	fullName, err := required("full_name", in.FullName)
	if err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	return &newIdentity{user: &model.AuthUser{Email: email, PasswordHash: hash}, fullName: fullName, role: role}, nil
}

func createIdentity(ctx context.Context, users repo.UserRepo, id *newIdentity) (*ManagedUser, error) {
	if err := users.Create(policy.AsService(ctx), id.user, id.fullName, id.role); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, invalid("email", "is already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	u := id.user
	return &ManagedUser{ID: u.ID, Email: u.Email, FullName: id.fullName, Role: string(id.role), CreatedAt: u.CreatedAt}, nil
}

func (s *teamService) ChangeRole(ctx context.Context, userID uuid.UUID, role string) error {
	if strings.TrimSpace(role) == "" {
		return invalid("role", "is required")
	}
	r, err := parseRole(role)
	if err != nil {
		return err
	}
	if err := s.access.Authorize(ctx, rolesTable, policy.Update, userID); err != nil {
		return err
	}
	return s.roles.SetRole(ctx, userID, r)
}

func (s *teamService) Remove(ctx context.Context, userID uuid.UUID) error {
	return s.admin.DeleteUser(ctx, userID.String())
}
