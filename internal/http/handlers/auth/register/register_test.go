package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/revision-generator/internal/models"
	authservice "github.com/magabrotheeeer/revision-generator/internal/services/auth"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email, password, name string) (string, *models.User, error) {
	args := m.Called(ctx, email, password, name)
	var user *models.User
	if args.Get(1) != nil {
		user = args.Get(1).(*models.User)
	}
	return args.String(0), user, args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	user := &models.User{
		UID:       "9c7b72a1-4f71-4f0e-9a76-2f1f5ad0a001",
		Email:     "eleve@example.com",
		Name:      "Camille",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"email":"eleve@example.com","password":"secret123","name":"Camille"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "eleve@example.com", "secret123", "Camille").
					Return("jwt-token", user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"jwt-token"`,
		},
		{
			name:           "некорректный json",
			body:           `{"email":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Requête invalide"`,
		},
		{
			name:           "невалидный email",
			body:           `{"email":"not-an-email","password":"secret123","name":"Camille"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:           "короткий пароль",
			body:           `{"email":"eleve@example.com","password":"123","name":"Camille"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name: "email уже занят",
			body: `{"email":"eleve@example.com","password":"secret123","name":"Camille"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "eleve@example.com", "secret123", "Camille").
					Return("", nil, authservice.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Email déjà utilisé"`,
		},
		{
			name: "ошибка сервиса",
			body: `{"email":"eleve@example.com","password":"secret123","name":"Camille"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "eleve@example.com", "secret123", "Camille").
					Return("", nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Impossible de créer le compte"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

func TestRegisterHandlerHidesHash(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	user := &models.User{
		UID:          "9c7b72a1-4f71-4f0e-9a76-2f1f5ad0a001",
		Email:        "eleve@example.com",
		Name:         "Camille",
		PasswordHash: "$2a$10$secrethash",
		CreatedAt:    time.Now().UTC(),
	}

	mockService := new(MockService)
	mockService.On("Register", mock.Anything, "eleve@example.com", "secret123", "Camille").
		Return("jwt-token", user, nil)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"eleve@example.com","password":"secret123","name":"Camille"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secrethash")
	assert.NotContains(t, w.Body.String(), "password_hash")
}
