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

func TestGenerateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMediaGenerator(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		media := &services.GeneratedMedia{
			Images:   []string{"a", "b", "c", "d"},
			VideoURL: "v",
		}
		mockSvc.EXPECT().Generate(gomock.Any(), "flying over a castle").Return(media, nil)

		w := httptest.NewRecorder()
		NewGenerateHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/api/dreams/generate", GenerateRequest{Description: "flying over a castle"}, userID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp services.GeneratedMedia
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, *media, resp)
	})

	t.Run("empty description", func(t *testing.T) {
		mockSvc.EXPECT().Generate(gomock.Any(), "").Return(nil, services.ErrInvalidInput)

		w := httptest.NewRecorder()
		NewGenerateHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/api/dreams/generate", GenerateRequest{}, userID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateDreamHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDreamCreator(ctrl)
	userID := uuid.New()
	video := "https://video.example/prompt/castle"

	tests := []struct {
		name         string
		userID       uuid.UUID
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "created",
			userID: userID,
			inputBody: CreateDreamRequest{
				Description: "crystal castle",
				ImageURL:    "https://img.example/1",
				VideoURL:    &video,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, services.CreateDreamInput{
						Description: "crystal castle",
						ImageURL:    "https://img.example/1",
						VideoURL:    &video,
					}).
					Return(&models.DreamDB{DreamID: uuid.New(), UserID: userID, Description: "crystal castle"}, 3, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "anonymous",
			userID:       uuid.Nil,
			inputBody:    CreateDreamRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid JSON",
			userID:       userID,
			inputBody:    "[",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "missing image",
			userID:    userID,
			inputBody: CreateDreamRequest{Description: "crystal castle"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, services.CreateDreamInput{Description: "crystal castle"}).
					Return(nil, 0, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "internal error",
			userID:    userID,
			inputBody: CreateDreamRequest{Description: "d", ImageURL: "i"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, 0, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateDreamHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/api/dreams", tt.inputBody, tt.userID, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var resp CreateDreamResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 3, resp.StreakCount)
				assert.Equal(t, "crystal castle", resp.Dream.Description)
			}
		})
	}
}

func TestFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFeedReader(ctrl)
	userID := uuid.New()

	items := []models.FeedItem{{
		DreamDB:    models.DreamDB{DreamID: uuid.New(), Description: "d", CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)},
		User:       models.UserSummary{Username: "alice"},
		LikesCount: 2,
		IsLiked:    true,
	}}

	t.Run("first page with next cursor", func(t *testing.T) {
		mockSvc.EXPECT().Feed(gomock.Any(), userID, "", 0).Return(items, "NEXT", nil)

		w := httptest.NewRecorder()
		NewFeedHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/dreams", nil, userID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "NEXT", w.Header().Get("X-Next-Cursor"))

		var resp []models.FeedItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.True(t, resp[0].IsLiked)
		assert.Equal(t, "alice", resp[0].User.Username)
	})

	t.Run("last page", func(t *testing.T) {
		mockSvc.EXPECT().Feed(gomock.Any(), userID, "abc", 20).Return([]models.FeedItem{}, "", nil)

		w := httptest.NewRecorder()
		NewFeedHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/dreams?cursor=abc&limit=20", nil, userID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Next-Cursor"))
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewFeedHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/dreams?limit=ten", nil, userID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad cursor", func(t *testing.T) {
		mockSvc.EXPECT().Feed(gomock.Any(), userID, "!!", 0).Return(nil, "", services.ErrInvalidInput)

		w := httptest.NewRecorder()
		NewFeedHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/dreams?cursor=!!", nil, userID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLikeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLikeToggler(ctrl)
	userID, dreamID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		dreamParam   string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:       "liked",
			dreamParam: dreamID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ToggleLike(gomock.Any(), userID, dreamID).Return(true, 1, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"liked":true,"likesCount":1}`,
		},
		{
			name:       "unliked",
			dreamParam: dreamID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ToggleLike(gomock.Any(), userID, dreamID).Return(false, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"liked":false,"likesCount":0}`,
		},
		{
			name:         "bad id",
			dreamParam:   "42",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid id"}`,
		},
		{
			name:       "missing dream",
			dreamParam: dreamID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().ToggleLike(gomock.Any(), userID, dreamID).Return(false, 0, services.ErrDreamNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"dream not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/api/dreams/"+tt.dreamParam+"/like", nil, userID, map[string]string{"id": tt.dreamParam})
			NewLikeHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCommentHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCommenter(ctrl)
	userID, dreamID := uuid.New(), uuid.New()
	params := map[string]string{"id": dreamID.String()}

	t.Run("add", func(t *testing.T) {
		comment := &models.Comment{
			CommentDB: models.CommentDB{CommentID: uuid.New(), DreamID: dreamID, UserID: userID, Text: "same here"},
			User:      models.UserSummary{UserID: userID, Username: "bob"},
		}
		mockSvc.EXPECT().AddComment(gomock.Any(), userID, dreamID, "same here").Return(comment, nil)

		w := httptest.NewRecorder()
		NewCommentHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", CommentRequest{Text: "same here"}, userID, params))

		require.Equal(t, http.StatusCreated, w.Code)
		var resp models.Comment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "same here", resp.Text)
		assert.Equal(t, "bob", resp.User.Username)
	})

	t.Run("add empty", func(t *testing.T) {
		mockSvc.EXPECT().AddComment(gomock.Any(), userID, dreamID, "").Return(nil, services.ErrEmptyContent)

		w := httptest.NewRecorder()
		NewCommentHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", CommentRequest{}, userID, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		mockSvc.EXPECT().Comments(gomock.Any(), dreamID).Return([]models.Comment{{CommentDB: models.CommentDB{Text: "first"}}}, nil)

		w := httptest.NewRecorder()
		NewCommentsHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/", nil, userID, params))

		require.Equal(t, http.StatusOK, w.Code)
		var resp []models.Comment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "first", resp[0].Text)
	})
}

func TestViewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockViewRecorder(ctrl)
	dreamID := uuid.New()
	params := map[string]string{"id": dreamID.String()}

	mockSvc.EXPECT().RecordView(gomock.Any(), dreamID).Return(8, nil)
	w := httptest.NewRecorder()
	NewViewHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", nil, uuid.New(), params))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"views":8}`, w.Body.String())

	mockSvc.EXPECT().RecordView(gomock.Any(), dreamID).Return(0, services.ErrDreamNotFound)
	w = httptest.NewRecorder()
	NewViewHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/", nil, uuid.New(), params))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMatchLister(ctrl)
	userID := uuid.New()

	match := models.Match{
		MatchDB: models.MatchDB{MatchID: uuid.New(), SenderID: userID, Score: 0.95, Status: models.MatchStatusPending},
		User:    models.UserSummary{Username: "alice"},
	}
	mockSvc.EXPECT().Matches(gomock.Any(), userID).Return([]models.Match{match}, nil)

	w := httptest.NewRecorder()
	NewMatchesHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/api/matches", nil, userID, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice", resp[0].User.Username)
	assert.Equal(t, 0.95, resp[0].Score)
}
