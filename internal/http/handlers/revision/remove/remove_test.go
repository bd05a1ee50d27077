package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/revision-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/revision-generator/internal/models"
	revisionservice "github.com/magabrotheeeer/revision-generator/internal/services/revision"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, userUID, id string) error {
	args := m.Called(ctx, userUID, id)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ownerUID := "9c7b72a1-4f71-4f0e-9a76-2f1f5ad0a001"
	revisionID := "a1b2c3d4-0000-0000-0000-000000000001"
	user := &models.User{UID: ownerUID, Email: "eleve@example.com", Name: "Camille"}

	tests := []struct {
		name           string
		id             string
		user           *models.User
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное удаление",
			id:   revisionID,
			user: user,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, ownerUID, revisionID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Révision supprimée"`,
		},
		{
			name: "ревизия не найдена",
			id:   revisionID,
			user: user,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, ownerUID, revisionID).
					Return(revisionservice.ErrRevisionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Révision non trouvée"`,
		},
		{
			name: "чужая ревизия неотличима от несуществующей",
			id:   "a1b2c3d4-0000-0000-0000-000000000099",
			user: user,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, ownerUID, "a1b2c3d4-0000-0000-0000-000000000099").
					Return(revisionservice.ErrRevisionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Révision non trouvée"`,
		},
		{
			name:           "анонимный запрос",
			id:             revisionID,
			user:           nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"message":"Non authentifié"`,
		},
		{
			name: "ошибка сервиса",
			id:   revisionID,
			user: user,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, ownerUID, revisionID).Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Impossible de supprimer la révision"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/revisions/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.user))
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
