package user

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/config"
	"github.com/jpdeguzman/alkansave/internal/upload"
)

const maxMultipartMemory = 8 << 20

type Handler struct {
	service    Service
	ingestor   *upload.Ingestor
	sessionTTL time.Duration
}

func NewHandler(service Service, ingestor *upload.Ingestor, sessionTTL time.Duration) *Handler {
	return &Handler{service: service, ingestor: ingestor, sessionTTL: sessionTTL}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	u, err := h.service.Register(dto)
	if err != nil {
		log.WithError(err).Warn("Registration failed")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"user_id":    u.UserID,
			"first_name": u.FirstName,
			"email":      u.Email,
		},
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	u, err := h.service.Login(dto.Email, dto.Password)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		config.Fail(w, err)
		return
	}

	token, err := auth.GenerateJWT(strconv.FormatUint(uint64(u.UserID), 10), u.Role, h.sessionTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		config.Fail(w, apperror.Persistence("Login failed", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"user_id":    u.UserID,
			"first_name": u.FirstName,
			"role":       u.Role,
		},
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	profile, err := h.service.GetProfile(userID, claims.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   profile,
	})
}

// UpdateProfile applies the edit-profile flow: optional avatar upload,
// optional password change, then one update against the user row. A staged
// avatar file is not removed if a later step fails.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		config.Fail(w, apperror.Validation("Invalid form data"))
		return
	}

	input := UpdateProfileInput{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Email:       r.FormValue("email"),
		DOB:         r.FormValue("dob"),
		Password:    r.FormValue("password"),
		NewPassword: r.FormValue("new_password"),
	}

	if file, _, err := r.FormFile("avatar"); err == nil {
		defer file.Close()

		path, err := h.ingestor.Save(userID, file, upload.EditProfilePolicy())
		if err != nil {
			log.WithError(err).Warn("Avatar upload rejected")
			config.Fail(w, err)
			return
		}
		input.AvatarPath = path
	}

	result, err := h.service.UpdateProfile(userID, input)
	if err != nil {
		log.WithError(err).Error("Failed to update profile")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    result,
	})
}
