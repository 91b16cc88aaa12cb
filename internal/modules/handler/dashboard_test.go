package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/founderflow/founderflow/internal/modules/service"
)

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockDashboardService) Reports(ctx context.Context) (*service.Reports, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Reports), args.Error(1)
}

type fixedAccess struct {
	service.Authorizer
	admin bool
}

func (f fixedAccess) IsAdmin(context.Context) bool { return f.admin }

func TestDashboardHandler_GetNavigation(t *testing.T) {
	tests := []struct {
		name  string
		admin bool
		want  []string
	}{
		{"member", false, []string{"Dashboard", "Projects", "Tasks", "Notes", "Reports"}},
		{"admin", true, []string{"Dashboard", "Projects", "Tasks", "Notes", "Reports", "Finance", "Team"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()
			h := NewDashboardHandler(&MockDashboardService{}, fixedAccess{admin: tt.admin})
			router.GET("/navigation", withSession(uuid.New(), tt.admin), h.GetNavigation)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/navigation", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				Data []service.NavItem `json:"data"`
			}
			require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
			titles := make([]string, 0, len(body.Data))
			for _, it := range body.Data {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestDashboardHandler_GetReports(t *testing.T) {
	svc := &MockDashboardService{}
	svc.On("Reports", mock.Anything).Return(&service.Reports{
		Projects: []service.StatusCount{{Name: "active", Value: 2}},
		Tasks:    []service.StatusCount{{Name: "in progress", Value: 1}},
	}, nil)

	router := setupRouter()
	router.GET("/reports", withSession(uuid.New(), false), NewDashboardHandler(svc, fixedAccess{}).GetReports)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/reports", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"in progress"`)
}
