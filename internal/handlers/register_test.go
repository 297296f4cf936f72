package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	age := 29

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				FullName: "Alice Dreamer",
				Username: "alice",
				Password: "password123",
				Gender:   "female",
				Age:      &age,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), services.RegisterInput{
						Username: "alice",
						Password: "password123",
						FullName: "Alice Dreamer",
						Gender:   "female",
						Age:      &age,
					}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{Message: "User created successfully"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Message: "Invalid request body"},
		},
		{
			name:      "username taken",
			inputBody: RegisterRequest{Username: "alice", Password: "password123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), services.RegisterInput{Username: "alice", Password: "password123"}).
					Return(services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Message: "username already taken"},
		},
		{
			name:      "missing password",
			inputBody: RegisterRequest{Username: "alice"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), services.RegisterInput{Username: "alice"}).
					Return(services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Message: "invalid input"},
		},
		{
			name:      "internal error",
			inputBody: RegisterRequest{Username: "alice", Password: "password123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPost, "/api/auth/register", tt.inputBody, uuid.Nil, nil)
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusCreated:
				respBody = &RegisterResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
