package policy

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/model"
)

var (
	ErrDenied          = errors.New("permission denied")
	ErrUnauthenticated = errors.New("no authenticated identity")
)

type RoleChecker interface {
	HasRole(ctx context.Context, userID uuid.UUID, role model.AppRole) (bool, error)
}

// Enforcer evaluates the rule table in-process, ahead of the database policies.
type Enforcer struct {
	roles RoleChecker
	log   *zap.Logger
}

func NewEnforcer(roles RoleChecker, log *zap.Logger) *Enforcer {
	return &Enforcer{roles: roles, log: log}
}

// IsAdmin reports whether the principal in ctx holds the admin role.
// Lookup failures resolve to false.
func (e *Enforcer) IsAdmin(ctx context.Context) bool {
	p, ok := FromContext(ctx)
	if !ok || p.UserID == uuid.Nil {
		return false
	}
	ok, err := e.roles.HasRole(ctx, p.UserID, model.RoleAdmin)
	if err != nil {
		e.log.Warn("role lookup failed, treating as non-admin",
			zap.String("user_id", p.UserID.String()), zap.Error(err))
		return false
	}
	return ok
}

// Authorize checks action on table for the principal in ctx. owner is the value of the
// row's owner column, or uuid.Nil when the check does not depend on it.
func (e *Enforcer) Authorize(ctx context.Context, table string, action Action, owner uuid.UUID) error {
	p, ok := FromContext(ctx)
	if !ok || (p.UserID == uuid.Nil && !p.Service) {
		return ErrUnauthenticated
	}
	rule, ok := Lookup(table)
	if !ok {
		return ErrDenied
	}

	check := rule.CheckFor(action)
	needsAdmin := false
	switch check {
	case OwnerOrAdmin:
		needsAdmin = owner != p.UserID
	case AdminOnly:
		needsAdmin = true
	}

	admin := false
	if needsAdmin && !p.Service {
		admin = e.IsAdmin(ctx)
	}
	if !Allowed(check, p, owner, admin) {
		return ErrDenied
	}
	return nil
}

// Allowed is the pure form of a check, mirroring Predicate.
func Allowed(c Check, p Principal, owner uuid.UUID, isAdmin bool) bool {
	if p.Service {
		return true
	}
	authenticated := p.UserID != uuid.Nil
	switch c {
	case Anyone:
		return authenticated
	case OwnerOrAdmin:
		return authenticated && (owner == p.UserID || isAdmin)
	case AdminOnly:
		return authenticated && isAdmin
	default:
		return false
	}
}
