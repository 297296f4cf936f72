package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dream-social/internal/models"
	"github.com/sbilibin2017/dream-social/internal/services"
)

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

// AccountReader returns the authenticated user's own profile.
type AccountReader interface {
	Me(ctx context.Context, userID uuid.UUID) (*services.Profile, error)
}

// AccountUpdater changes the authenticated user's profile.
type AccountUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, bio, avatarURL *string) (*models.UserDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile update.
// Omitted fields keep their current value.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Bio, at most 100 characters
	// default: I dream in colour
	Bio *string `json:"bio,omitempty"`

	// Avatar image URL
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// NewMeHandler returns the current user with dreams, matches and counters.
// @Summary Current user
// @Description Returns the authenticated user's profile. A lapsed streak is reset before returning.
// @Tags auth
// @Produce json
// @Success 200 {object} services.Profile
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /auth/me [get]
func NewMeHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.Me(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler updates bio and avatar of the current user.
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Bio too long / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /auth/profile [put]
func NewUpdateProfileHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, req.Bio, req.AvatarURL)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
