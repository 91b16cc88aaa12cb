package handler

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/founderflow/founderflow/internal/infra/mailer"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
	"github.com/founderflow/founderflow/internal/modules/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withSession simulates the auth middleware.
func withSession(uid uuid.UUID, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", &service.Session{User: service.SessionUser{ID: uid, Email: "ada@example.com"}, IsAdmin: admin})
		c.Request = c.Request.WithContext(policy.WithPrincipal(c.Request.Context(), policy.Principal{UserID: uid}))
		c.Next()
	}
}

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in service.CreateProjectInput) (*service.ProjectDetail, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*service.ProjectDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, query string) ([]service.ProjectDetail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id uuid.UUID, in service.UpdateProjectInput) (*service.ProjectDetail, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockFinanceService is a mock implementation of service.FinanceService
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) Create(ctx context.Context, in service.CreateFinanceInput) (*model.FinanceRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinanceRecord), args.Error(1)
}

func (m *MockFinanceService) List(ctx context.Context, rangeName string) (*service.FinanceList, error) {
	args := m.Called(ctx, rangeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FinanceList), args.Error(1)
}

func (m *MockFinanceService) Update(ctx context.Context, id uuid.UUID, in service.UpdateFinanceInput) (*model.FinanceRecord, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinanceRecord), args.Error(1)
}

func (m *MockFinanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFinanceService) Export(ctx context.Context, rangeName string) ([]byte, string, error) {
	args := m.Called(ctx, rangeName)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockTeamService is a mock implementation of service.TeamService
type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) List(ctx context.Context) (*service.TeamView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TeamView), args.Error(1)
}

func (m *MockTeamService) Invite(ctx context.Context, in service.InviteInput) (*service.ManagedUser, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ManagedUser), args.Error(1)
}

func (m *MockTeamService) ChangeRole(ctx context.Context, userID uuid.UUID, role string) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *MockTeamService) Remove(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignUp(ctx context.Context, in service.SignUpInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.AuthResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignOut(ctx context.Context, s *service.Session, refreshToken string) error {
	return m.Called(ctx, s, refreshToken).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, raw string) (*service.Session, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

func (m *MockAuthService) Session(ctx context.Context, s *service.Session) *service.Session {
	return m.Called(ctx, s).Get(0).(*service.Session)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	return m.Called(ctx, rawToken, newPassword).Error(0)
}

// MockUserAdminService is a mock implementation of service.UserAdminService
type MockUserAdminService struct {
	mock.Mock
}

func (m *MockUserAdminService) ListUsers(ctx context.Context) ([]service.ManagedUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ManagedUser), args.Error(1)
}

func (m *MockUserAdminService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockResetEmailService is a mock implementation of service.ResetEmailService
type MockResetEmailService struct {
	mock.Mock
}

func (m *MockResetEmailService) Send(ctx context.Context, email, resetLink string) (*mailer.SendResult, error) {
	args := m.Called(ctx, email, resetLink)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.SendResult), args.Error(1)
}

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, in service.UpdateProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, fh *multipart.FileHeader) (*model.Profile, error) {
	args := m.Called(ctx, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
