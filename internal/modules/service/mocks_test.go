package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/founderflow/founderflow/internal/infra/mailer"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/repo"
	"github.com/founderflow/founderflow/internal/pkg/datefilter"
)

func userCtx(uid uuid.UUID) context.Context {
	return policy.WithPrincipal(context.Background(), policy.Principal{UserID: uid})
}

// MockAuthorizer is a mock implementation of Authorizer
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, table string, action policy.Action, owner uuid.UUID) error {
	args := m.Called(ctx, table, action, owner)
	return args.Error(0)
}

func (m *MockAuthorizer) IsAdmin(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, f repo.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProjectRepo) Statuses(ctx context.Context) ([]model.ProjectStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectStatus), args.Error(1)
}

// MockTaskRepo is a mock implementation of repo.TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTaskRepo) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) List(ctx context.Context, f repo.TaskFilter) ([]model.Task, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Task, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskRepo) Statuses(ctx context.Context) ([]model.TaskStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskStatus), args.Error(1)
}

// MockFinanceRepo is a mock implementation of repo.FinanceRepo
type MockFinanceRepo struct {
	mock.Mock
}

func (m *MockFinanceRepo) Create(ctx context.Context, f *model.FinanceRecord) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFinanceRepo) Get(ctx context.Context, id uuid.UUID) (*model.FinanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinanceRecord), args.Error(1)
}

func (m *MockFinanceRepo) List(ctx context.Context, w datefilter.Window) ([]model.FinanceRecord, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FinanceRecord), args.Error(1)
}

func (m *MockFinanceRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.FinanceRecord, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinanceRecord), args.Error(1)
}

func (m *MockFinanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockProfileRepo is a mock implementation of repo.ProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) List(ctx context.Context) ([]model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Profile, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.AuthUser, fullName string, role model.AppRole) error {
	return m.Called(ctx, u, fullName, role).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.AuthUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthUser), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthUser), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]model.AuthUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuthUser), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepo) CreateResetToken(ctx context.Context, t *model.PasswordResetToken, now time.Time) error {
	return m.Called(ctx, t, now).Error(0)
}

func (m *MockUserRepo) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash, passwordHash, now)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockRoleRepo is a mock implementation of repo.RoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) HasRole(ctx context.Context, userID uuid.UUID, role model.AppRole) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepo) List(ctx context.Context) ([]model.UserRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserRole), args.Error(1)
}

func (m *MockRoleRepo) SetRole(ctx context.Context, userID uuid.UUID, role model.AppRole) error {
	return m.Called(ctx, userID, role).Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) (*mailer.SendResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.SendResult), args.Error(1)
}

// MockResetEmail is a mock implementation of ResetEmailService
type MockResetEmail struct {
	mock.Mock
}

func (m *MockResetEmail) Send(ctx context.Context, email, resetLink string) (*mailer.SendResult, error) {
	args := m.Called(ctx, email, resetLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.SendResult), args.Error(1)
}

// MockInvitations is a mock implementation of InvitationDispatcher
type MockInvitations struct {
	mock.Mock
}

func (m *MockInvitations) Dispatch(ctx context.Context, inv Invitation) error {
	return m.Called(ctx, inv).Error(0)
}
