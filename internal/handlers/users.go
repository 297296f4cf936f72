package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserSearcher finds users by name.
type UserSearcher interface {
	Search(ctx context.Context, viewerID uuid.UUID, query string) ([]models.UserSearchResult, error)
}

// ProfileReader returns another user's public profile.
type ProfileReader interface {
	Profile(ctx context.Context, viewerID uuid.UUID, username string) (*services.Profile, error)
}

// Follower manages follow edges.
type Follower interface {
	ToggleFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
}

// FollowResponse represents the follow state after a change
// swagger:model FollowResponse
type FollowResponse struct {
	Following bool `json:"following"`
}

// NewSearchUsersHandler returns an HTTP handler searching users.
// @Summary Search users
// @Description Case-insensitive match on username or full name, at most 10 results.
// @Tags users
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {array} models.UserSearchResult
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/search [get]
func NewSearchUsersHandler(svc UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		users, err := svc.Search(r.Context(), userID, r.URL.Query().Get("query"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewProfileHandler returns an HTTP handler for a user's public profile.
// @Summary User profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} services.Profile
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/profile/{username} [get]
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.Profile(r.Context(), userID, chi.URLParam(r, "username"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewFollowHandler returns an HTTP handler toggling a follow.
// @Summary Follow or unfollow a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.FollowResponse
// @Failure 400 {object} handlers.ErrorResponse "Cannot follow yourself"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/follow/{id} [post]
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		targetID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		following, err := svc.ToggleFollow(r.Context(), userID, targetID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, FollowResponse{Following: following})
	}
}

// NewUnfollowHandler returns an HTTP handler removing a follow.
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.FollowResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/unfollow/{id} [post]
func NewUnfollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		targetID, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Unfollow(r.Context(), userID, targetID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, FollowResponse{Following: false})
	}
}
