package service

import (
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
)

func strPtr(s string) *string { return &s }

func TestProjectService_Create(t *testing.T) {
	uid := uuid.New()
	ctx := userCtx(uid)

	tests := []struct {
		name      string
		in        CreateProjectInput
		setup     func(*MockProjectRepo, *MockAuthorizer)
		wantField string
		wantErr   error
		check     func(*testing.T, *ProjectDetail)
	}{
		{
			name: "stores project and reports balance",
			in: CreateProjectInput{
				Name:        "Website",
				StartDate:   "2026-01-01",
				Deadline:    "2026-03-01",
				TotalAmount: "1000",
				AmountPaid:  "400",
			},
			setup: func(r *MockProjectRepo, a *MockAuthorizer) {
				a.On("Authorize", mock.Anything, projectsTable, policy.Insert, uid).Return(nil)
				r.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
					return p.CreatedBy == uid && p.Status == model.ProjectActive && p.Description == nil
				})).Return(nil)
			},
			check: func(t *testing.T, d *ProjectDetail) {
				assert.Equal(t, 600.0, d.Balance)
				assert.Equal(t, "600.00", d.BalanceDisplay)
			},
		},
		{
			name:      "missing name is rejected before any call",
			in:        CreateProjectInput{StartDate: "2026-01-01", Deadline: "2026-03-01"},
			setup:     func(*MockProjectRepo, *MockAuthorizer) {},
			wantField: "name",
		},
		{
			name:      "bad date",
			in:        CreateProjectInput{Name: "X", StartDate: "01/02/2026", Deadline: "2026-03-01"},
			setup:     func(*MockProjectRepo, *MockAuthorizer) {},
			wantField: "start_date",
		},
		{
			name:      "non numeric amount",
			in:        CreateProjectInput{Name: "X", StartDate: "2026-01-01", Deadline: "2026-03-01", TotalAmount: "lots"},
			setup:     func(*MockProjectRepo, *MockAuthorizer) {},
			wantField: "total_amount",
		},
		{
			name:      "unknown status",
			in:        CreateProjectInput{Name: "X", StartDate: "2026-01-01", Deadline: "2026-03-01", Status: "paused"},
			setup:     func(*MockProjectRepo, *MockAuthorizer) {},
			wantField: "status",
		},
		{
			name: "policy denial",
			in:   CreateProjectInput{Name: "X", StartDate: "2026-01-01", Deadline: "2026-03-01"},
			setup: func(r *MockProjectRepo, a *MockAuthorizer) {
				a.On("Authorize", mock.Anything, projectsTable, policy.Insert, uid).Return(policy.ErrDenied)
			},
			wantErr: policy.ErrDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockProjectRepo{}
			a := &MockAuthorizer{}
			tt.setup(r, a)

			svc := NewProjectService(r, a)
			got, err := svc.Create(ctx, tt.in)

			switch {
			case tt.wantField != "":
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				tt.check(t, got)
			}
			r.AssertExpectations(t)
			a.AssertExpectations(t)
		})
	}
}

func TestProjectService_CreateRequiresIdentity(t *testing.T) {
	svc := NewProjectService(&MockProjectRepo{}, &MockAuthorizer{})
	_, err := svc.Create(userCtx(uuid.Nil), CreateProjectInput{Name: "X"})
	assert.ErrorIs(t, err, policy.ErrUnauthenticated)
}

func TestProjectService_Update(t *testing.T) {
	uid := uuid.New()
	ctx := userCtx(uid)
	id := uuid.New()

	t.Run("update after concurrent delete is not found", func(t *testing.T) {
		r := &MockProjectRepo{}
		a := &MockAuthorizer{}
		r.On("Get", mock.Anything, id).Return(nil, repo.ErrNotFound)

		_, err := NewProjectService(r, a).Update(ctx, id, UpdateProjectInput{Name: strPtr("New")})
		assert.ErrorIs(t, err, repo.ErrNotFound)
		a.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("only present fields are written", func(t *testing.T) {
		r := &MockProjectRepo{}
		a := &MockAuthorizer{}
		current := &model.Project{ID: id, CreatedBy: uid}
		r.On("Get", mock.Anything, id).Return(current, nil)
		a.On("Authorize", mock.Anything, projectsTable, policy.Update, uid).Return(nil)
		r.On("Update", mock.Anything, id, map[string]interface{}{
			"description": nil,
			"amount_paid": 250.0,
		}).Return(&model.Project{ID: id, CreatedBy: uid}, nil)

		_, err := NewProjectService(r, a).Update(ctx, id, UpdateProjectInput{
			Description: strPtr(""),
			AmountPaid:  strPtr("250"),
		})
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := NewProjectService(&MockProjectRepo{}, &MockAuthorizer{}).Update(ctx, id, UpdateProjectInput{})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("someone else's project", func(t *testing.T) {
		r := &MockProjectRepo{}
		a := &MockAuthorizer{}
		other := uuid.New()
		r.On("Get", mock.Anything, id).Return(&model.Project{ID: id, CreatedBy: other}, nil)
		a.On("Authorize", mock.Anything, projectsTable, policy.Update, other).Return(policy.ErrDenied)

		_, err := NewProjectService(r, a).Update(ctx, id, UpdateProjectInput{Name: strPtr("New")})
		assert.ErrorIs(t, err, policy.ErrDenied)
		r.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectService_Delete(t *testing.T) {
	uid := uuid.New()
	id := uuid.New()
	r := &MockProjectRepo{}
	a := &MockAuthorizer{}
	r.On("Get", mock.Anything, id).Return(&model.Project{ID: id, CreatedBy: uid}, nil)
	a.On("Authorize", mock.Anything, projectsTable, policy.Delete, uid).Return(nil)
	r.On("Delete", mock.Anything, id).Return(errors.New("database error"))

	err := NewProjectService(r, a).Delete(userCtx(uid), id)
	assert.EqualError(t, err, "database error")
}

func TestUpdateProjectInput_ReportsFirstInvalidField(t *testing.T) {
	tests := []struct {
		name string
		in   UpdateProjectInput
		want string
	}{
		{
			name: "start date before deadline",
			in:   UpdateProjectInput{StartDate: strPtr("soon"), Deadline: strPtr("later")},
			want: "start_date",
		},
		{
			name: "dates before amounts",
			in:   UpdateProjectInput{Deadline: strPtr("later"), TotalAmount: strPtr("x"), AmountPaid: strPtr("y")},
			want: "deadline",
		},
		{
			name: "total before paid",
			in:   UpdateProjectInput{TotalAmount: strPtr("x"), AmountPaid: strPtr("1e12")},
			want: "total_amount",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				_, err := tt.in.fields()
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.want, ve.Field)
			}
		})
	}
}

func TestUpdateProjectInput_AmountOutOfRange(t *testing.T) {
	_, err := UpdateProjectInput{AmountPaid: strPtr("10000000000")}.fields()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount_paid", ve.Field)
}

func TestUpdateProjectInput_AcceptsFetchedDates(t *testing.T) {
	fetched := model.Project{
		StartDate: model.NewDate(2026, 1, 5),
		Deadline:  model.NewDate(2026, 3, 1),
	}
	body, err := sonic.Marshal(fetched)
	require.NoError(t, err)

	var wire struct {
		StartDate string `json:"start_date"`
		Deadline  string `json:"deadline"`
	}
	require.NoError(t, sonic.Unmarshal(body, &wire))
	assert.Equal(t, "2026-01-05", wire.StartDate)

	f, err := UpdateProjectInput{StartDate: &wire.StartDate, Deadline: &wire.Deadline}.fields()
	require.NoError(t, err)
	assert.Equal(t, fetched.StartDate, f["start_date"])
	assert.Equal(t, fetched.Deadline, f["deadline"])
}
