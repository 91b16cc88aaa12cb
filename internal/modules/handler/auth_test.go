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

	"github.com/founderflow/founderflow/internal/modules/service"
)

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "ok",
			body: `{"email":"ada@example.com","password":"secret1"}`,
			setup: func(m *MockAuthService) {
				m.On("SignIn", mock.Anything, "ada@example.com", "secret1").
					Return(&service.AuthResult{Session: service.Session{IsAdmin: true}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"email":"ada@example.com","password":"nope"}`,
			setup: func(m *MockAuthService) {
				m.On("SignIn", mock.Anything, "ada@example.com", "nope").Return(nil, service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           `{"email":"ada@example.com"}`,
			setup:          func(*MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.setup(svc)

			router := setupRouter()
			router.POST("/auth/signin", NewAuthHandler(svc).SignIn)

			req := httptest.NewRequest("POST", "/auth/signin", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_SignUpDisabled(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("SignUp", mock.Anything, mock.Anything).Return(nil, service.ErrSignupDisabled)

	router := setupRouter()
	router.POST("/auth/signup", NewAuthHandler(svc).SignUp)

	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBufferString(`{"email":"ada@example.com","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_GetSession(t *testing.T) {
	uid := uuid.New()
	svc := &MockAuthService{}
	svc.On("Session", mock.Anything, mock.AnythingOfType("*service.Session")).
		Return(&service.Session{User: service.SessionUser{ID: uid, Email: "ada@example.com"}, IsAdmin: true})

	router := setupRouter()
	router.GET("/auth/session", withSession(uid, true), NewAuthHandler(svc).GetSession)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data service.Session `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uid, body.Data.User.ID)
	assert.True(t, body.Data.IsAdmin)
	assert.False(t, body.Data.Loading)
}

func TestAuthHandler_GetSessionWithoutLogin(t *testing.T) {
	router := setupRouter()
	router.GET("/auth/session", NewAuthHandler(&MockAuthService{}).GetSession)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SignOutWithoutBody(t *testing.T) {
	uid := uuid.New()
	svc := &MockAuthService{}
	svc.On("SignOut", mock.Anything, mock.AnythingOfType("*service.Session"), "").Return(nil)

	router := setupRouter()
	router.POST("/auth/signout", withSession(uid, false), NewAuthHandler(svc).SignOut)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/auth/signout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_ForgotPasswordHidesUnknownEmail(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("ForgotPassword", mock.Anything, "ghost@example.com").Return(nil)

	router := setupRouter()
	router.POST("/auth/forgot-password", NewAuthHandler(svc).ForgotPassword)

	req := httptest.NewRequest("POST", "/auth/forgot-password", bytes.NewBufferString(`{"email":"ghost@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
