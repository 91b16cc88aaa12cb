package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

const tasksTable = "tasks"

type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, in ListTasksInput) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	r      repo.TaskRepo
	access Authorizer
}

func NewTaskService(r repo.TaskRepo, access Authorizer) TaskService {
	return &taskService{r: r, access: access}
}

func parseTaskStatus(s string) (model.TaskStatus, error) {
	st := model.TaskStatus(s)
	if !st.Valid() {
		return "", invalid("status", "must be one of todo, in_progress, done")
	}
	return st, nil
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Deadline    string
	ProjectID   string
}

func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	title, err := required("title", in.Title)
	if err != nil {
		return nil, err
	}
	status := model.TaskTodo
	if in.Status != "" {
		if status, err = parseTaskStatus(in.Status); err != nil {
			return nil, err
		}
	}
	deadline, err := parseOptionalDate("deadline", in.Deadline)
	if err != nil {
		return nil, err
	}
	projectID, err := parseOptionalUUID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(ctx, tasksTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	t := &model.Task{
		Title:       title,
		Description: optionalText(in.Description),
		Status:      status,
		Deadline:    deadline,
		ProjectID:   projectID,
		AssignedTo:  &uid,
		CreatedBy:   uid,
	}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.r.Get(ctx, id)
}

type ListTasksInput struct {
	Status    string
	ProjectID string
}

func (s *taskService) List(ctx context.Context, in ListTasksInput) ([]model.Task, error) {
	f := repo.TaskFilter{}
	if in.Status != "" {
		st, err := parseTaskStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}
	projectID, err := parseOptionalUUID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	f.ProjectID = projectID
	return s.r.List(ctx, f)
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Deadline    *string
	ProjectID   *string
}

func (in UpdateTaskInput) fields() (map[string]interface{}, error) {
	f := map[string]interface{}{}
	if in.Title != nil {
		title, err := required("title", *in.Title)
		if err != nil {
			return nil, err
		}
		f["title"] = title
	}
	if in.Description != nil {
		f["description"] = nullable(*in.Description)
	}
	if in.Status != nil {
		st, err := parseTaskStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		f["status"] = st
	}
	if in.Deadline != nil {
		d, err := parseOptionalDate("deadline", *in.Deadline)
		if err != nil {
			return nil, err
		}
		if d == nil {
			f["deadline"] = nil
		} else {
			f["deadline"] = *d
		}
	}
	if in.ProjectID != nil {
		id, err := parseOptionalUUID("project_id", *in.ProjectID)
		if err != nil {
			return nil, err
		}
		if id == nil {
			f["project_id"] = nil
		} else {
			f["project_id"] = *id
		}
	}
	if len(f) == 0 {
		return nil, invalid("body", "no fields to update")
	}
	return f, nil
}

func (s *taskService) Update(ctx context.Context, id uuid.UUID, in UpdateTaskInput) (*model.Task, error) {
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}
	return s.patch(ctx, id, fields)
}

// UpdateStatus moves a task to any status; there is no transition order.
func (s *taskService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Task, error) {
	st, err := parseTaskStatus(status)
	if err != nil {
		return nil, err
	}
	return s.patch(ctx, id, map[string]interface{}{"status": st})
}

func (s *taskService) patch(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Task, error) {
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, tasksTable, policy.Update, current.CreatedBy); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, fields)
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.Authorize(ctx, tasksTable, policy.Delete, current.CreatedBy); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
