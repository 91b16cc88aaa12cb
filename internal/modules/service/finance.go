package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/datefilter"
	"github.com/founderflow/founderflow/internal/pkg/export"
	"github.com/founderflow/founderflow/internal/pkg/money"
)

const financeTable = "finance_records"

type FinanceService interface {
	Create(ctx context.Context, in CreateFinanceInput) (*model.FinanceRecord, error)
	List(ctx context.Context, rangeName string) (*FinanceList, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateFinanceInput) (*model.FinanceRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, rangeName string) (data []byte, filename string, err error)
}

type financeService struct {
	r      repo.FinanceRepo
	access Authorizer
	now    func() time.Time
}

func NewFinanceService(r repo.FinanceRepo, access Authorizer) FinanceService {
	return &financeService{r: r, access: access, now: time.Now}
}

type FinanceList struct {
	Range         datefilter.Range      `json:"range"`
	Records       []model.FinanceRecord `json:"records"`
	TotalIncome   float64               `json:"total_income"`
	TotalExpenses float64               `json:"total_expenses"`
	Profit        float64               `json:"profit"`
	ProfitDisplay string                `json:"profit_display"`
}

func parseFinanceType(s string) (model.FinanceType, error) {
	t := model.FinanceType(s)
	if !t.Valid() {
		return "", invalid("type", "must be income or expense")
	}
	return t, nil
}

type CreateFinanceInput struct {
	Type        string
	Amount      string
	Description string
	Date        string
	ProjectID   string
}

func (s *financeService) Create(ctx context.Context, in CreateFinanceInput) (*model.FinanceRecord, error) {
	uid, err := actor(ctx)
	if err != nil {
		return nil, err
	}
	typ, err := parseFinanceType(in.Type)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return nil, err
	}
	projectID, err := parseOptionalUUID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	if projectID == nil {
		return nil, invalid("project_id", "is required")
	}
	date := today()
	if in.Date != "" {
		if date, err = parseDate("date", in.Date); err != nil {
			return nil, err
		}
	}

	if err := s.access.Authorize(ctx, financeTable, policy.Insert, uid); err != nil {
		return nil, err
	}
	rec := &model.FinanceRecord{
		ProjectID:   *projectID,
		Type:        typ,
		Amount:      amount,
		Description: optionalText(in.Description),
		Date:        date,
		CreatedBy:   uid,
	}
	if err := s.r.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create finance record: %w", err)
	}
	return rec, nil
}

func (s *financeService) list(ctx context.Context, rangeName string) (datefilter.Range, []model.FinanceRecord, error) {
	rng, err := datefilter.Parse(rangeName)
	if err != nil {
		return "", nil, invalid("range", "must be one of all, daily, weekly, monthly")
	}
	if err := s.access.Authorize(ctx, financeTable, policy.Select, uuid.Nil); err != nil {
		return "", nil, err
	}
	records, err := s.r.List(ctx, datefilter.For(rng, s.now()))
	if err != nil {
		return "", nil, err
	}
	return rng, records, nil
}

func (s *financeService) List(ctx context.Context, rangeName string) (*FinanceList, error) {
	rng, records, err := s.list(ctx, rangeName)
	if err != nil {
		return nil, err
	}
	income, expenses := SumFinance(records)
	return &FinanceList{
		Range:         rng,
		Records:       records,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Profit:        income - expenses,
		ProfitDisplay: money.Format(income - expenses),
	}, nil
}

func (s *financeService) Export(ctx context.Context, rangeName string) ([]byte, string, error) {
	rng, records, err := s.list(ctx, rangeName)
	if err != nil {
		return nil, "", err
	}
	rows := make([]export.FinanceRow, 0, len(records))
	for _, r := range records {
		row := export.FinanceRow{
			Date:   r.Date.Time(),
			Type:   string(r.Type),
			Amount: r.Amount,
		}
		if r.Project != nil {
			row.Project = r.Project.Name
		}
		if r.Description != nil {
			row.Description = *r.Description
		}
		rows = append(rows, row)
	}
	data, err := export.FinanceXLSX(rows)
	if err != nil {
		return nil, "", fmt.Errorf("build finance export: %w", err)
	}
	return data, fmt.Sprintf("finance-report-%s.xlsx", rng), nil
}

type UpdateFinanceInput struct {
	Type        *string
	Amount      *string
	Description *string
	Date        *string
	ProjectID   *string
}

func (in UpdateFinanceInput) fields() (map[string]interface{}, error) {
	f := map[string]interface{}{}
	if in.Type != nil {
		t, err := parseFinanceType(*in.Type)
		if err != nil {
			return nil, err
		}
		f["type"] = t
	}
	if in.Amount != nil {
		a, err := parseAmount("amount", *in.Amount)
		if err != nil {
			return nil, err
		}
		f["amount"] = a
	}
	if in.Description != nil {
		f["description"] = nullable(*in.Description)
	}
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		f["date"] = d
	}
	if in.ProjectID != nil {
		id, err := parseOptionalUUID("project_id", *in.ProjectID)
		if err != nil {
			return nil, err
		}
		if id == nil {
			return nil, invalid("project_id", "is required")
		}
		f["project_id"] = *id
	}
	if len(f) == 0 {
		return nil, invalid("body", "no fields to update")
	}
	return f, nil
}

func (s *financeService) Update(ctx context.Context, id uuid.UUID, in UpdateFinanceInput) (*model.FinanceRecord, error) {
	fields, err := in.fields()
	if err != nil {
		return nil, err
	}
	if err := s.access.Authorize(ctx, financeTable, policy.Update, uuid.Nil); err != nil {
		return nil, err
	}
	return s.r.Update(ctx, id, fields)
}

func (s *financeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.access.Authorize(ctx, financeTable, policy.Delete, uuid.Nil); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}
