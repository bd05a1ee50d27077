package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/models"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"
)

// MockService реализует интерфейс generate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Generate(ctx context.Context, userUID *string, req models.DummyGenerateRequest) (*models.Revision, error) {
	args := m.Called(ctx, userUID, req)
	var revision *models.Revision
	if args.Get(0) != nil {
		revision = args.Get(0).(*models.Revision)
	}
	return revision, args.Error(1)
}

func TestGenerateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ownerUID := "9c7b72a1-4f71-4f0e-9a76-2f1f5ad0a001"
	validBody := `{"prompt":"Le théorème de Pythagore","subject":"maths","revision_type":"fiche"}`
	validReq := models.DummyGenerateRequest{
		Prompt:       "Le théorème de Pythagore",
		Subject:      "maths",
		RevisionType: "fiche",
	}

	tests := []struct {
		name           string
		body           string
		user           *models.User
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "анонимная генерация",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Generate", mock.Anything, (*string)(nil), validReq).
					Return(&models.Revision{
						ID:           "a1b2c3d4-0000-0000-0000-000000000001",
						Subject:      "maths",
						RevisionType: "fiche",
						Prompt:       "Le théorème de Pythagore",
						Content:      "# Fiche",
						CreatedAt:    time.Now().UTC(),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_id":null`,
		},
		{
			name: "генерация с владельцем",
			body: validBody,
			user: &models.User{UID: ownerUID, Email: "eleve@example.com", Name: "Camille"},
			setupMock: func(m *MockService) {
				m.On("Generate", mock.Anything, mock.MatchedBy(func(uid *string) bool {
					return uid != nil && *uid == ownerUID
				}), validReq).
					Return(&models.Revision{
						ID:           "a1b2c3d4-0000-0000-0000-000000000002",
						UserUID:      &ownerUID,
						Subject:      "maths",
						RevisionType: "fiche",
						Prompt:       "Le théorème de Pythagore",
						Content:      "# Fiche",
						CreatedAt:    time.Now().UTC(),
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fmt.Sprintf(`"user_id":%q`, ownerUID),
		},
		{
			name:           "некорректный json",
			body:           `{"prompt":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Requête invalide"`,
		},
		{
			name:           "отсутствует предмет",
			body:           `{"prompt":"Le théorème de Pythagore","revision_type":"fiche"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Subject is a required field`,
		},
		{
			name: "провайдер не настроен",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Generate", mock.Anything, (*string)(nil), validReq).
					Return(nil, revisionservice.ErrProviderUnconfigured)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Clé API non configurée"`,
		},
		{
			name: "сбой генерации",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Generate", mock.Anything, (*string)(nil), validReq).
					Return(nil, fmt.Errorf("%w: %s", revisionservice.ErrGenerationFailed, "provider returned status 500"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Erreur de génération: provider returned status 500"`,
		},
		{
			name: "прочая ошибка сервиса",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Generate", mock.Anything, (*string)(nil), validReq).
					Return(nil, errors.New("unexpected"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Erreur interne du serveur"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tt.body))
			if tt.user != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.User, tt.user)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
