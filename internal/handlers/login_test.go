package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "demo",
		PasswordHash: "$2a$10$hash",
		FullName:     "Demo User",
		AvatarURL:    "https://ui-avatars.com/api/?name=Demo+User",
		StreakCount:  5,
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Username: "demo",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "demo", "password123").
					Return("JWT_TOKEN", user, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{
				Token: "JWT_TOKEN",
				User: models.UserSummary{
					UserID:      user.UserID,
					Username:    "demo",
					FullName:    "Demo User",
					AvatarURL:   "https://ui-avatars.com/api/?name=Demo+User",
					StreakCount: 5,
				},
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Message: "Invalid request body"},
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				Username: "demo",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "demo", "wrongpass").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Message: "invalid credentials"},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Username: "demo",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "demo", "password123").
					Return("", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPost, "/api/auth/login", tt.inputBody, uuid.Nil, nil)
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &LoginResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}

	t.Run("password hash is never returned", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "demo", "password123").
			Return("JWT_TOKEN", user, nil)

		w := httptest.NewRecorder()
		NewLoginHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/api/auth/login", LoginRequest{Username: "demo", Password: "password123"}, uuid.Nil, nil))

		assert.NotContains(t, w.Body.String(), "$2a$10$hash")
	})
}
