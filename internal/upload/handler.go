package upload

import (
	"net/http"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/config"
)

// AvatarUpdater is the slice of the user repository this endpoint needs.
type AvatarUpdater interface {
	UpdateProfilePicture(id uint, path string) error
}

type Handler struct {
	ingestor *Ingestor
	users    AvatarUpdater
}

func NewHandler(ingestor *Ingestor, users AvatarUpdater) *Handler {
	return &Handler{ingestor: ingestor, users: users}
}

// UploadAvatar replaces only the profile picture, independent of the
// edit-profile flow.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		config.Fail(w, apperror.Validation("Invalid request"))
		return
	}
	defer file.Close()

	path, err := h.ingestor.Save(userID, file, AvatarPolicy())
	if err != nil {
		log.WithError(err).Warn("Avatar upload rejected")
		config.Fail(w, err)
		return
	}

	if err := h.users.UpdateProfilePicture(userID, path); err != nil {
		log.WithError(err).Error("Failed to update avatar in database")
		config.Fail(w, apperror.Persistence("Failed to update avatar in database", err))
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"avatar": path,
	})
}
