package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/markdown"
)

const (
	notesTable    = "notes"
	unknownAuthor = "Unknown"
)

type NoteService interface {
	Create(ctx context.Context, in CreateNoteInput) (*model.Note, error)
	List(ctx context.Context, in ListNotesInput) ([]model.Note, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateNoteInput) (*model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	r        repo.NoteRepo
	profiles repo.ProfileRepo
	access   Authorizer
	log      *zap.Logger
}

func NewNoteService(r repo.NoteRepo, profiles repo.ProfileRepo, access Authorizer, log *zap.Logger) NoteService {
	return &noteService{r: r, profiles: profiles, access: access, log: log}
}

func parseMentions(ids []string) (pq.StringArray, error) {
	out := make(pq.StringArray, 0, len(ids))
	for _, s := range ids {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, invalid("mentioned_users", "must contain user ids")
		}
		out = append(out, id.String())
	}
	return out, nil
}

type CreateNoteInput struct {
	Content        string
	ProjectID      string
	TaskID         string
	MentionedUsers []string
}

func (s *noteService) Create(ctx context.Context, in CreateNoteInput) (*model.Note, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	content, err := required("content", in.Content)
	if err != nil {
		return nil, err
	}
	projectID, err := parseOptionalUUID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	taskID, err := parseOptionalUUID("task_id", in.TaskID)
	if err != nil {
		return nil, err
	}
	mentions, err := parseMentions(in.MentionedUsers)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(ctx, notesTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	n := &model.Note{
		Content:        content,
		ProjectID:      projectID,
		TaskID:         taskID,
		MentionedUsers: mentions,
		CreatedBy:      uid,
	}
	if err := s.r.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	s.decorate(ctx, []*model.Note{n})
	return n, nil
}

type ListNotesInput struct {
	ProjectID string
	TaskID    string
}

func (s *noteService) List(ctx context.Context, in ListNotesInput) ([]model.Note, error) {
	projectID, err := parseOptionalUUID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	taskID, err := parseOptionalUUID("task_id", in.TaskID)
	if err != nil {
		return nil, err
	}
	notes, err := s.r.List(ctx, repo.NoteFilter{ProjectID: projectID, TaskID: taskID})
	if err != nil {
		return nil, err
	}
	ptrs := make([]*model.Note, len(notes))
	for i := range notes {
		ptrs[i] = &notes[i]
	}
	s.decorate(ctx, ptrs)
	return notes, nil
}

// decorate fills author names and rendered content. Missing profiles read as Unknown.
func (s *noteService) decorate(ctx context.Context, notes []*model.Note) {
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, n := range notes {
		if !seen[n.CreatedBy] {
			seen[n.CreatedBy] = true
			ids = append(ids, n.CreatedBy)
		}
	}

	names := map[uuid.UUID]string{}
	profiles, err := s.profiles.ListByIDs(ctx, ids)
	if err != nil {
		s.log.Warn("load note authors", zap.Error(err))
	}
	for _, p := range profiles {
		names[p.ID] = p.DisplayName(unknownAuthor)
	}

	for _, n := range notes {
		n.AuthorName = unknownAuthor
		if name, ok := names[n.CreatedBy]; ok {
			n.AuthorName = name
		}
		n.ContentHTML = markdown.ToHTML(n.Content)
	}
}

type UpdateNoteInput struct {
	Content        *string
	ProjectID      *string
	TaskID         *string
	MentionedUsers *[]string
}

func (in UpdateNoteInput) fields() (map[string]interface{}, error) {
	f := map[string]interface{}{}
	if in.Content != nil {
		c, err := required("content", *in.Content)
		if err != nil {
			return nil, err
		}
		f["content"] = c
	}
	for _, c := range []column{{"project_id", in.ProjectID}, {"task_id", in.TaskID}} {
		if c.v == nil {
			continue
		}
		id, err := parseOptionalUUID(c.name, *c.v)
		if err != nil {
			return nil, err
		}
		if id == nil {
			f[c.name] = nil
		} else {
			f[c.name] = *id
		}
	}
	if in.MentionedUsers != nil {
		m, err := parseMentions(*in.MentionedUsers)
		if err != nil {
			return nil, err
		}
		f["mentioned_users"] = m
	}
	if len(f) == 0 {
		return nil, invalid("body", "no fields to update")
	}
	return f, nil
}

func (s *noteService) Update(ctx context.Context, id uuid.UUID, in UpdateNoteInput) (*model.Note, error) {
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, notesTable, policy.Update, current.CreatedBy); err != nil {
		return nil, err
	}
	n, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, []*model.Note{n})
	return n, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.Authorize(ctx, notesTable, policy.Delete, current.CreatedBy); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
