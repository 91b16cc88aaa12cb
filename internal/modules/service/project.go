package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/money"
)

const projectsTable = "projects"

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*ProjectDetail, error)
	Get(ctx context.Context, id uuid.UUID) (*ProjectDetail, error)
	List(ctx context.Context, query string) ([]ProjectDetail, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*ProjectDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	r      repo.ProjectRepo
	access Authorizer
}

func NewProjectService(r repo.ProjectRepo, access Authorizer) ProjectService {
	return &projectService{r: r, access: access}
}

// ProjectDetail is a project with its outstanding balance.
type ProjectDetail struct {
	model.Project
	Balance        float64 `json:"balance"`
	BalanceDisplay string  `json:"balance_display"`
}

func newProjectDetail(p model.Project) ProjectDetail {
	b := p.Balance()
	return ProjectDetail{Project: p, Balance: b, BalanceDisplay: money.Format(b)}
}

type CreateProjectInput struct {
	Name              string
	Description       string
	Deliverables      string
	StartDate         string
	Deadline          string
	Status            string
	ClientName        string
	ClientEmail       string
	ClientPhone       string
	ResponsiblePerson string
	TotalAmount       string
	AmountPaid        string
}

func (in CreateProjectInput) build(owner uuid.UUID) (*model.Project, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate("deadline", in.Deadline)
	if err != nil {
		return nil, err
	}
	status := model.ProjectActive
	if in.Status != "" {
		status = model.ProjectStatus(in.Status)
		if !status.Valid() {
			return nil, invalid("status", "must be one of active, ongoing, completed")
		}
	}
	total, err := parseOptionalAmount("total_amount", in.TotalAmount)
	if err != nil {
		return nil, err
	}
	paid, err := parseOptionalAmount("amount_paid", in.AmountPaid)
	if err != nil {
		return nil, err
	}

	return &model.Project{
		Name:              name,
		Description:       optionalText(in.Description),
		Deliverables:      optionalText(in.Deliverables),
		StartDate:         start,
		Deadline:          deadline,
		Status:            status,
		ClientName:        optionalText(in.ClientName),
		ClientEmail:       optionalText(in.ClientEmail),
		ClientPhone:       optionalText(in.ClientPhone),
		ResponsiblePerson: optionalText(in.ResponsiblePerson),
		TotalAmount:       total,
		AmountPaid:        paid,
		CreatedBy:         owner,
	}, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*ProjectDetail, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	p, err := in.build(uid)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, projectsTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	out := newProjectDetail(*p)
	return &out, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*ProjectDetail, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := newProjectDetail(*p)
	return &out, nil
}

func (s *projectService) List(ctx context.Context, query string) ([]ProjectDetail, error) {
	projects, err := s.r.List(ctx, repo.ProjectFilter{Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDetail, 0, len(projects))
	for _, p := range projects {
		out = append(out, newProjectDetail(p))
	}
	return out, nil
}

type UpdateProjectInput struct {
	Name              *string
	Description       *string
	Deliverables      *string
	StartDate         *string
	Deadline          *string
	Status            *string
	ClientName        *string
	ClientEmail       *string
	ClientPhone       *string
	ResponsiblePerson *string
	TotalAmount       *string
	AmountPaid        *string
}

func (in UpdateProjectInput) fields() (map[string]interface{}, error) {
	f := map[string]interface{}{}
	if in.Name != nil {
		name, err := required("name", *in.Name)
		if err != nil {
			return nil, err
		}
		f["name"] = name
	}
	for _, c := range []column{
		{"description", in.Description},
		{"deliverables", in.Deliverables},
		{"client_name", in.ClientName},
		{"client_email", in.ClientEmail},
		{"client_phone", in.ClientPhone},
		{"responsible_person", in.ResponsiblePerson},
	} {
		if c.v != nil {
			f[c.name] = nullable(*c.v)
		}
	}
	for _, c := range []column{{"start_date", in.StartDate}, {"deadline", in.Deadline}} {
		if c.v != nil {
			d, err := parseDate(c.name, *c.v)
			if err != nil {
				return nil, err
			}
			f[c.name] = d
		}
	}
	if in.Status != nil {
		st := model.ProjectStatus(*in.Status)
		if !st.Valid() {
			return nil, invalid("status", "must be one of active, ongoing, completed")
		}
		f["status"] = st
	}
	for _, c := range []column{{"total_amount", in.TotalAmount}, {"amount_paid", in.AmountPaid}} {
		if c.v != nil {
			a, err := parseOptionalAmount(c.name, *c.v)
			if err != nil {
				return nil, err
			}
			f[c.name] = *a
		}
	}
	if len(f) == 0 {
		return nil, invalid("body", "no fields to update")
	}
	return f, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*ProjectDetail, error) {
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, projectsTable, policy.Update, current.CreatedBy); err != nil {
		return nil, err
	}
	p, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	out := newProjectDetail(*p)
	return &out, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.Authorize(ctx, projectsTable, policy.Delete, current.CreatedBy); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
