package service

import (
	"context"
	"strings"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/datefilter"
	"github.com/founderflow/founderflow/internal/pkg/money"
)

type Dashboard struct {
	TotalProjects     int     `json:"total_projects"`
	ActiveProjects    int     `json:"active_projects"`
	OngoingProjects   int     `json:"ongoing_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalTasks        int     `json:"total_tasks"`
	PendingTasks      int     `json:"pending_tasks"`
	TotalEarnings     float64 `json:"total_earnings"`
	TotalExpenses     float64 `json:"total_expenses"`
	Profit            float64 `json:"profit"`
	ProfitDisplay     string  `json:"profit_display"`
}

type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Reports struct {
	Projects []StatusCount `json:"projects"`
	Tasks    []StatusCount `json:"tasks"`
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Reports(ctx context.Context) (*Reports, error)
}

type dashboardService struct {
	projects repo.ProjectRepo
	tasks    repo.TaskRepo
	finance  repo.FinanceRepo
	access   Authorizer
}

func NewDashboardService(projects repo.ProjectRepo, tasks repo.TaskRepo, finance repo.FinanceRepo, access Authorizer) DashboardService {
	return &dashboardService{projects: projects, tasks: tasks, finance: finance, access: access}
}

func (s *dashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	if _, err := actor(ctx); err != nil {
		return nil, err
	}
	statuses, err := s.projects.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	taskStatuses, err := s.tasks.Statuses(ctx)
	if err != nil {
		return nil, err
	}

	var records []model.FinanceRecord
	if s.access.IsAdmin(ctx) {
		if records, err = s.finance.List(ctx, datefilter.Window{}); err != nil {
			return nil, err
		}
	}
	return Summarize(statuses, taskStatuses, records), nil
}

func (s *dashboardService) Reports(ctx context.Context) (*Reports, error) {
	if _, err := actor(ctx); err != nil {
		return nil, err
	}
	statuses, err := s.projects.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	taskStatuses, err := s.tasks.Statuses(ctx)
	if err != nil {
		return nil, err
	}

	projectNames := make([]string, len(statuses))
	for i, st := range statuses {
		projectNames[i] = string(st)
	}
	taskNames := make([]string, len(taskStatuses))
	for i, st := range taskStatuses {
		taskNames[i] = strings.ReplaceAll(string(st), "_", " ")
	}
	return &Reports{Projects: CountByName(projectNames), Tasks: CountByName(taskNames)}, nil
}

// Summarize reduces the visible rows into dashboard figures. Ongoing is whatever is
// neither active nor completed.
func Summarize(projects []model.ProjectStatus, tasks []model.TaskStatus, records []model.FinanceRecord) *Dashboard {
	d := &Dashboard{TotalProjects: len(projects), TotalTasks: len(tasks)}
	for _, st := range projects {
		switch st {
		case model.ProjectActive:
			d.ActiveProjects++
		case model.ProjectCompleted:
			d.CompletedProjects++
		}
	}
	d.OngoingProjects = d.TotalProjects - d.ActiveProjects - d.CompletedProjects
	for _, st := range tasks {
		if st != model.TaskDone {
			d.PendingTasks++
		}
	}
	d.TotalEarnings, d.TotalExpenses = SumFinance(records)
	d.Profit = d.TotalEarnings - d.TotalExpenses
	d.ProfitDisplay = money.Format(d.Profit)
	return d
}

func SumFinance(records []model.FinanceRecord) (income, expenses float64) {
	for _, r := range records {
		switch r.Type {
		case model.FinanceIncome:
			income += r.Amount
		case model.FinanceExpense:
			expenses += r.Amount
		}
	}
	return income, expenses
}

// CountByName counts occurrences, keeping the order in which names first appear.
func CountByName(names []string) []StatusCount {
	out := []StatusCount{}
	idx := map[string]int{}
	for _, n := range names {
		if i, ok := idx[n]; ok {
			out[i].Value++
			continue
		}
		idx[n] = len(out)
		out = append(out, StatusCount{Name: n, Value: 1})
	}
	return out
}
