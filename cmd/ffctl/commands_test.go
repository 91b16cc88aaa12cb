package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

type stubUsers struct {
	repo.UserRepo
	byEmail map[string]uuid.UUID
}

func (s stubUsers) GetByEmail(_ context.Context, email string) (*model.AuthUser, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &model.AuthUser{ID: id, Email: email}, nil
}

func TestResolveUser(t *testing.T) {
	known := uuid.New()
	users := stubUsers{byEmail: map[string]uuid.UUID{"ada@example.com": known}}

	id, err := resolveUser(context.Background(), users, known.String())
	require.NoError(t, err)
	assert.Equal(t, known, id)

	id, err = resolveUser(context.Background(), users, " Ada@Example.com")
	require.NoError(t, err)
	assert.Equal(t, known, id)

	_, err = resolveUser(context.Background(), users, "ghost@example.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "create-user", "grant-role"} {
		assert.True(t, names[want], want)
	}
}
