package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountReader(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		profile := &services.Profile{
			UserDB: &models.UserDB{
				UserID:      userID,
				Username:    "demo",
				FullName:    "Demo User",
				StreakCount: 5,
				CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Dreams: []models.DreamDB{},
			Counts: models.UserCounts{Followers: 2, Following: 1, Dreams: 0},
		}
		mockSvc.EXPECT().Me(gomock.Any(), userID).Return(profile, nil)

		w := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/me", nil, userID, nil))

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "demo", body["username"])
		assert.Equal(t, float64(5), body["streakCount"])
		assert.Equal(t, map[string]any{"followers": float64(2), "following": float64(1), "dreams": float64(0)}, body["counts"])
		assert.NotContains(t, body, "isFollowing")
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/me", nil, uuid.Nil, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user deleted", func(t *testing.T) {
		mockSvc.EXPECT().Me(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		w := httptest.NewRecorder()
		NewMeHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/auth/me", nil, userID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "user not found", decodeError(t, w).Message)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAccountUpdater(ctrl)
	userID := uuid.New()
	bio := "I dream in colour"

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "bio only",
			inputBody: map[string]string{"bio": bio},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), userID, &bio, nil).
					Return(&models.UserDB{UserID: userID, Bio: bio}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "bio too long",
			inputBody: UpdateProfileRequest{Bio: &bio},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), userID, &bio, nil).
					Return(nil, services.ErrBioTooLong)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "internal error",
			inputBody: UpdateProfileRequest{},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), userID, nil, nil).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewUpdateProfileHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPut, "/api/auth/profile", tt.inputBody, userID, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
