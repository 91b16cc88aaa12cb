package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/policy"
)

type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the per-request view of the signed-in identity. IsAdmin is a display
// hint; every privileged operation re-checks the role in the database.
type Session struct {
	User    SessionUser `json:"user"`
	IsAdmin bool        `json:"is_admin"`
	Loading bool        `json:"loading"`

	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

type Authorizer interface {
	Authorize(ctx context.Context, table string, action policy.Action, owner uuid.UUID) error
	IsAdmin(ctx context.Context) bool
}

func actor(ctx context.Context) (uuid.UUID, error) {
	p, ok := policy.FromContext(ctx)
	if !ok || p.UserID == uuid.Nil {
		return uuid.Nil, policy.ErrUnauthenticated
	}
	return p.UserID, nil
}
