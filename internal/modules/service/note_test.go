package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

// MockNoteRepo is a mock implementation of repo.NoteRepo
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Create(ctx context.Context, n *model.Note) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNoteRepo) Get(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepo) List(ctx context.Context, f repo.NoteFilter) ([]model.Note, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Note, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestNoteService_ListDecoratesAuthors(t *testing.T) {
	known := uuid.New()
	gone := uuid.New()
	r := &MockNoteRepo{}
	profiles := &MockProfileRepo{}
	r.On("List", mock.Anything, repo.NoteFilter{}).Return([]model.Note{
		{Content: "**ship** it", CreatedBy: known},
		{Content: "plain", CreatedBy: gone},
	}, nil)
	profiles.On("ListByIDs", mock.Anything, []uuid.UUID{known, gone}).
		Return([]model.Profile{{ID: known, FullName: "Ada"}}, nil)

	notes, err := NewNoteService(r, profiles, &MockAuthorizer{}, zap.NewNop()).List(userCtx(known), ListNotesInput{})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Ada", notes[0].AuthorName)
	assert.Contains(t, notes[0].ContentHTML, "<strong>ship</strong>")
	assert.Equal(t, "Unknown", notes[1].AuthorName)
}

func TestNoteService_ProfileLookupFailureKeepsNotes(t *testing.T) {
	uid := uuid.New()
	r := &MockNoteRepo{}
	profiles := &MockProfileRepo{}
	r.On("List", mock.Anything, mock.Anything).Return([]model.Note{{Content: "x", CreatedBy: uid}}, nil)
	profiles.On("ListByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	notes, err := NewNoteService(r, profiles, &MockAuthorizer{}, zap.NewNop()).List(userCtx(uid), ListNotesInput{})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", notes[0].AuthorName)
}

func TestNoteService_CreateValidation(t *testing.T) {
	svc := NewNoteService(&MockNoteRepo{}, &MockProfileRepo{}, &MockAuthorizer{}, zap.NewNop())
	tests := []struct {
		name  string
		in    CreateNoteInput
		field string
	}{
		{"empty content", CreateNoteInput{Content: "  "}, "content"},
		{"bad project", CreateNoteInput{Content: "x", ProjectID: "p1"}, "project_id"},
		{"bad mention", CreateNoteInput{Content: "x", MentionedUsers: []string{"bob"}}, "mentioned_users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(userCtx(uuid.New()), tt.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestUpdateNoteInput_ReportsFirstInvalidField(t *testing.T) {
	in := UpdateNoteInput{ProjectID: strPtr("nope"), TaskID: strPtr("nope")}
	for i := 0; i < 50; i++ {
		_, err := in.fields()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "project_id", ve.Field)
	}
}

func TestUpdateNoteInput_ClearsLinks(t *testing.T) {
	f, err := UpdateNoteInput{ProjectID: strPtr(""), TaskID: strPtr("")}.fields()
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"project_id": nil, "task_id": nil}, f)
}
