package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/founderflow/founderflow/internal/modules/serializer"
	"github.com/founderflow/founderflow/internal/modules/service"
)

func TestTeamHandler_ListTeam(t *testing.T) {
	svc := &MockTeamService{}
	svc.On("List", mock.Anything).Return(&service.TeamView{
		Members:    []service.ManagedUser{{Email: "Hidden", FullName: "Mia", Role: "member", Restricted: true}},
		Restricted: true,
	}, nil)

	router := setupRouter()
	router.GET("/team", withSession(uuid.New(), true), NewTeamHandler(svc).ListTeam)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/team", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data service.TeamView `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Data.Restricted)
	require.Len(t, body.Data.Members, 1)
	assert.Equal(t, "Hidden", body.Data.Members[0].Email)
}

func TestTeamHandler_InviteMember(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockTeamService)
		expectedStatus int
	}{
		{
			name: "invited",
			body: `{"email":"mia@example.com","password":"secret1","full_name":"Mia Wong","role":"member"}`,
			setup: func(svc *MockTeamService) {
				svc.On("Invite", mock.Anything, service.InviteInput{
					Email: "mia@example.com", Password: "secret1", FullName: "Mia Wong", Role: "member",
				}).Return(&service.ManagedUser{Email: "mia@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing password",
			body:           `{"email":"mia@example.com","full_name":"Mia Wong"}`,
			setup:          func(*MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: `{"email":"mia@example.com","password":"secret1","full_name":"Mia Wong"}`,
			setup: func(svc *MockTeamService) {
				svc.On("Invite", mock.Anything, mock.Anything).
					Return(nil, &service.ValidationError{Field: "email", Reason: "is already registered"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTeamService{}
			tt.setup(svc)

			router := setupRouter()
			router.POST("/team/invite", withSession(uuid.New(), true), NewTeamHandler(svc).InviteMember)

			req := httptest.NewRequest("POST", "/team/invite", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestTeamHandler_RemoveMember(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"removed", nil, http.StatusOK, ""},
		{"caller lost admin", service.ErrAdminRequired, http.StatusForbidden, service.MsgDeleteRequiresAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTeamService{}
			svc.On("Remove", mock.Anything, id).Return(tt.err)

			router := setupRouter()
			router.DELETE("/team/:user_id", withSession(uuid.New(), true), NewTeamHandler(svc).RemoveMember)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("DELETE", "/team/"+id.String()+"?confirm=true", nil))
			assert.Equal(t, tt.expectedStatus, w.Code)

			var res serializer.Response
			require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.expectedMsg, res.Msg)
		})
	}
}

func TestTeamHandler_ChangeRole(t *testing.T) {
	id := uuid.New()
	svc := &MockTeamService{}
	svc.On("ChangeRole", mock.Anything, id, "admin").Return(nil)

	router := setupRouter()
	router.PUT("/team/:user_id/role", withSession(uuid.New(), true), NewTeamHandler(svc).ChangeRole)

	req := httptest.NewRequest("PUT", "/team/"+id.String()+"/role", bytes.NewBufferString(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
