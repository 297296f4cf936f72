package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
)

//go:generate mockgen -source=dreams.go -destination=dreams_mock.go -package=handlers

// MediaGenerator turns a dream description into media URLs.
type MediaGenerator interface {
	Generate(ctx context.Context, description string) (*services.GeneratedMedia, error)
}

// DreamCreator posts a dream.
type DreamCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in services.CreateDreamInput) (*models.DreamDB, int, error)
}

// FeedReader pages through the dream feed.
type FeedReader interface {
	Feed(ctx context.Context, viewerID uuid.UUID, cursor string, limit int) ([]models.FeedItem, string, error)
}

// LikeToggler likes or unlikes a dream.
type LikeToggler interface {
	ToggleLike(ctx context.Context, userID, dreamID uuid.UUID) (bool, int, error)
}

// Commenter adds and lists comments.
type Commenter interface {
	AddComment(ctx context.Context, userID, dreamID uuid.UUID, text string) (*models.Comment, error)
	Comments(ctx context.Context, dreamID uuid.UUID) ([]models.Comment, error)
}

// ViewRecorder counts dream views.
type ViewRecorder interface {
	RecordView(ctx context.Context, dreamID uuid.UUID) (int, error)
}

// MatchLister lists the current user's matches.
type MatchLister interface {
	Matches(ctx context.Context, userID uuid.UUID) ([]models.Match, error)
}

// GenerateRequest represents the JSON body for media generation
// swagger:model GenerateRequest
type GenerateRequest struct {
	// Dream description
	// required: true
	// default: I was flying over a crystal castle
	Description string `json:"description"`
}

// CreateDreamRequest represents the JSON body for posting a dream
// swagger:model CreateDreamRequest
type CreateDreamRequest struct {
	// Dream description
	// required: true
	Description string `json:"description"`

	// Selected generated image
	// required: true
	ImageURL string `json:"imageUrl"`

	// Generated video, optional
	VideoURL *string `json:"videoUrl,omitempty"`
}

// CreateDreamResponse represents a posted dream with the updated streak
// swagger:model CreateDreamResponse
type CreateDreamResponse struct {
	Dream       *models.DreamDB `json:"dream"`
	StreakCount int             `json:"streakCount"`
}

// LikeResponse represents the like state after a toggle
// swagger:model LikeResponse
type LikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// CommentRequest represents the JSON body for a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// required: true
	Text string `json:"text"`
}

// ViewResponse represents the view counter after a view
// swagger:model ViewResponse
type ViewResponse struct {
	Views int `json:"views"`
}

// NewGenerateHandler returns an HTTP handler producing media for a description.
// @Summary Generate dream media
// @Description Builds four image URLs and one video URL from the description.
// @Tags dreams
// @Accept json
// @Produce json
// @Param generateRequest body handlers.GenerateRequest true "Description"
// @Success 200 {object} services.GeneratedMedia
// @Failure 400 {object} handlers.ErrorResponse "Description is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/generate [post]
func NewGenerateHandler(svc MediaGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		media, err := svc.Generate(r.Context(), req.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, media)
	}
}

// NewCreateDreamHandler returns an HTTP handler posting a dream.
// @Summary Post a dream
// @Description Stores the dream, updates the posting streak and looks for matching dreams of other users.
// @Tags dreams
// @Accept json
// @Produce json
// @Param createDreamRequest body handlers.CreateDreamRequest true "Dream"
// @Success 201 {object} handlers.CreateDreamResponse
// @Failure 400 {object} handlers.ErrorResponse "Description and image are required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams [post]
func NewCreateDreamHandler(svc DreamCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreateDreamRequest
		if !decodeBody(w, r, &req) {
			return
		}

		dream, streak, err := svc.Create(r.Context(), userID, services.CreateDreamInput{
			Description: req.Description,
			ImageURL:    req.ImageURL,
			VideoURL:    req.VideoURL,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateDreamResponse{
			Dream:       dream,
			StreakCount: streak,
		})
	}
}

// NewFeedHandler returns an HTTP handler for the dream feed.
// @Summary Dream feed
// @Description Returns dreams newest first. The next page cursor is returned in the X-Next-Cursor header.
// @Tags dreams
// @Produce json
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} models.FeedItem
// @Header 200 {string} X-Next-Cursor "Cursor of the next page"
// @Failure 400 {object} handlers.ErrorResponse "Invalid cursor or limit"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams [get]
func NewFeedHandler(svc FeedReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		limit := 0
		if raw := query.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = n
		}

		items, next, err := svc.Feed(r.Context(), userID, query.Get("cursor"), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if next != "" {
			w.Header().Set("X-Next-Cursor", next)
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// NewLikeHandler returns an HTTP handler toggling a like.
// @Summary Like or unlike a dream
// @Tags dreams
// @Produce json
// @Param id path string true "Dream ID"
// @Success 200 {object} handlers.LikeResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Dream not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/{id}/like [post]
func NewLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		dreamID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		liked, count, err := svc.ToggleLike(r.Context(), userID, dreamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LikeResponse{Liked: liked, LikesCount: count})
	}
}

// NewCommentHandler returns an HTTP handler adding a comment.
// @Summary Comment on a dream
// @Tags dreams
// @Accept json
// @Produce json
// @Param id path string true "Dream ID"
// @Param commentRequest body handlers.CommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} handlers.ErrorResponse "Text is required"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Dream not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/{id}/comment [post]
func NewCommentHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		dreamID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		var req CommentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		comment, err := svc.AddComment(r.Context(), userID, dreamID, req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

// NewCommentsHandler returns an HTTP handler listing the comments of a dream.
// @Summary Dream comments
// @Tags dreams
// @Produce json
// @Param id path string true "Dream ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Dream not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/{id}/comments [get]
func NewCommentsHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dreamID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		comments, err := svc.Comments(r.Context(), dreamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// NewViewHandler returns an HTTP handler counting a view.
// @Summary Record a dream view
// @Tags dreams
// @Produce json
// @Param id path string true "Dream ID"
// @Success 200 {object} handlers.ViewResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Dream not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/{id}/view [post]
func NewViewHandler(svc ViewRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dreamID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		views, err := svc.RecordView(r.Context(), dreamID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ViewResponse{Views: views})
	}
}

// NewMatchesHandler returns an HTTP handler listing the current user's matches.
// @Summary Dream matches
// @Tags dreams
// @Produce json
// @Success 200 {array} models.Match
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dreams/matches [get]
func NewMatchesHandler(svc MatchLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		matches, err := svc.Matches(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, matches)
	}
}
